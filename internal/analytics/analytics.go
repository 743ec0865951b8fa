// Package analytics derives the spending screen's data: category shares,
// weekly dynamics, optimization tips and achievements over the demo
// spending set.
package analytics

import "errors"

var ErrExpenseNotFound = errors.New("expense not found")

type Category struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Color  string  `json:"color"`
}

type Tip struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Expense struct {
	ID                int     `json:"id"`
	Description       string  `json:"description"`
	Amount            float64 `json:"amount"`
	SuggestedCategory string  `json:"suggestedCategory"`
	Category          string  `json:"category,omitempty"`
}

type Period string

const (
	Day   Period = "day"
	Week  Period = "week"
	Month Period = "month"
)

// Board is the analytics screen state for one client.
type Board struct {
	period        Period
	categories    []Category
	uncategorized []Expense
}

func NewBoard() *Board {
	return &Board{
		period: Week,
		categories: []Category{
			{Name: "Food", Amount: 350, Color: "#f44336"},
			{Name: "Transport", Amount: 120, Color: "#2196f3"},
			{Name: "Shopping", Amount: 200, Color: "#ff9800"},
			{Name: "Bills", Amount: 150, Color: "#4caf50"},
			{Name: "Entertainment", Amount: 180, Color: "#9c27b0"},
		},
		uncategorized: []Expense{
			{ID: 1, Description: "McDonalds", Amount: 12.5, SuggestedCategory: "Food"},
			{ID: 2, Description: "Uber Ride", Amount: 8.9, SuggestedCategory: "Transport"},
		},
	}
}

func (b *Board) Period() Period          { return b.period }
func (b *Board) SetPeriod(p Period)      { b.period = p }
func (b *Board) Categories() []Category  { return b.categories }
func (b *Board) Uncategorized() []Expense { return b.uncategorized }

func (b *Board) Total() float64 {
	var total float64

	for _, c := range b.categories {
		total += c.Amount
	}

	return total
}

// WeeklyDynamics is the fixed budget line series for the dynamics chart.
func (b *Board) WeeklyDynamics() (labels []string, data []float64) {
	labels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	data = []float64{120, 140, 100, 180, 90, 200, 160}
	return
}

// Tips flags categories above 30% of total spend and praises those under
// 10%.
func (b *Board) Tips() []Tip {
	total := b.Total()
	tips := []Tip{}

	for _, cat := range b.categories {
		percentage := cat.Amount / total * 100

		if percentage > 30 {
			tips = append(tips, Tip{
				Category: cat.Name,
				Text:     "You're spending a lot on " + cat.Name + ". Consider cutting back.",
			})
		} else if percentage < 10 {
			tips = append(tips, Tip{
				Category: cat.Name,
				Text:     "Great job keeping " + cat.Name + " spending low!",
			})
		}
	}

	return tips
}

// Achievements mirrors the fixed demo badges: low bills, modest
// entertainment, and a warning badge for heavy food spending.
func (b *Board) Achievements() []Achievement {
	var out []Achievement

	if b.amountOf("Bills") < 100 {
		out = append(out, Achievement{
			Title:       "Bill Saver",
			Description: "You kept bills under $100 this period.",
			Icon:        "lightning-bolt",
		})
	}

	if b.amountOf("Entertainment") < 150 {
		out = append(out, Achievement{
			Title:       "Entertainment Guru",
			Description: "Entertainment spending under control.",
			Icon:        "movie",
		})
	}

	if b.amountOf("Food") > 300 {
		out = append(out, Achievement{
			Title:       "Foodie Alert",
			Description: "Food spending is running high.",
			Icon:        "food",
		})
	}

	return out
}

// AssignCategory files an uncategorized expense under a category and
// removes it from the pending list.
func (b *Board) AssignCategory(id int, category string) error {
	for i, e := range b.uncategorized {
		if e.ID == id {
			for j := range b.categories {
				if b.categories[j].Name == category {
					b.categories[j].Amount += e.Amount
					break
				}
			}

			b.uncategorized = append(b.uncategorized[:i], b.uncategorized[i+1:]...)

			return nil
		}
	}

	return ErrExpenseNotFound
}

func (b *Board) amountOf(name string) float64 {
	for _, c := range b.categories {
		if c.Name == name {
			return c.Amount
		}
	}

	return 0
}
