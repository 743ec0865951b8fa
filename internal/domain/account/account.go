package account

type Account struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
	Change  float64 `json:"change"`
}

type Transaction struct {
	ID     int     `json:"id"`
	Title  string  `json:"title"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
	Icon   string  `json:"icon"`
}

// Demo returns the fixed demo accounts shown on the dashboard and offered
// by the transfer form.
func Demo() []Account {
	return []Account{
		{ID: "1", Name: "Main Account", Balance: 5320.75, Change: 2.3},
		{ID: "2", Name: "Savings", Balance: 10320.99, Change: -1.1},
		{ID: "3", Name: "Crypto Wallet", Balance: 2150.4, Change: 4.5},
	}
}

// RecentTransactions returns the demo dashboard feed, most recent first.
func RecentTransactions() []Transaction {
	return []Transaction{
		{ID: 1, Title: "Coffee Shop", Amount: -4.5, Date: "Apr 5", Icon: "coffee"},
		{ID: 2, Title: "Salary", Amount: 1200, Date: "Apr 3", Icon: "cash"},
		{ID: 3, Title: "Groceries", Amount: -67.25, Date: "Apr 2", Icon: "cart"},
		{ID: 4, Title: "Netflix", Amount: -15.99, Date: "Apr 1", Icon: "filmstrip"},
		{ID: 5, Title: "Apple Store", Amount: -230, Date: "Mar 29", Icon: "apple"},
		{ID: 6, Title: "Amazon", Amount: -59.99, Date: "Mar 28", Icon: "cart-outline"},
	}
}
