// Package transfer implements the transfer form: validation, confirmation
// into a local history, and reusable templates. Everything here is
// client-local; confirmed transfers never reach a server.
package transfer

import (
	"errors"
	"strconv"
	"time"

	"github.com/andriiko/pocketbank/internal/domain/account"
)

type Type string

const (
	Internal Type = "internal"
	External Type = "external"
	IBAN     Type = "iban"
	Card     Type = "card"
	QR       Type = "qr"
)

// MaxAmount is the per-transfer ceiling; anything above disables
// confirmation.
const MaxAmount = 10000

var (
	ErrCannotConfirm       = errors.New("transfer cannot be confirmed")
	ErrTemplateNotFound    = errors.New("template not found")
	ErrUnknownTransferType = errors.New("unknown transfer type")
)

// Record is one confirmed transfer, held only in the local history.
type Record struct {
	ID      int64   `json:"id"`
	Type    Type    `json:"type"`
	Amount  float64 `json:"amount"`
	Comment string  `json:"comment,omitempty"`
	Date    string  `json:"date"`
	From    string  `json:"from"`
	To      string  `json:"to"`
}

// Template is a saved snapshot of the form. From/To hold account ids for
// internal transfers and source-account/recipient otherwise.
type Template struct {
	ID      int64  `json:"id"`
	Type    Type   `json:"type"`
	From    string `json:"from"`
	To      string `json:"to"`
	Amount  string `json:"amount"`
	Comment string `json:"comment"`
}

// Form is the single shared form state. Views mutate it through setters
// instead of carrying their own copies of each field.
type Form struct {
	accounts []account.Account

	typ           Type
	fromAccount   string
	toAccount     string
	sourceAccount string
	recipient     string
	amount        string
	comment       string

	history   []Record
	templates []Template
}

func NewForm(accounts []account.Account) *Form {
	return &Form{
		accounts:      accounts,
		typ:           Internal,
		fromAccount:   "1",
		toAccount:     "2",
		sourceAccount: "1",
	}
}

func (f *Form) Type() Type            { return f.typ }
func (f *Form) FromAccount() string   { return f.fromAccount }
func (f *Form) ToAccount() string     { return f.toAccount }
func (f *Form) SourceAccount() string { return f.sourceAccount }
func (f *Form) Recipient() string     { return f.recipient }
func (f *Form) Amount() string        { return f.amount }
func (f *Form) Comment() string       { return f.comment }

func (f *Form) SetType(t Type)             { f.typ = t }
func (f *Form) SetFromAccount(id string)   { f.fromAccount = id }
func (f *Form) SetToAccount(id string)     { f.toAccount = id }
func (f *Form) SetSourceAccount(id string) { f.sourceAccount = id }
func (f *Form) SetRecipient(r string)      { f.recipient = r }
func (f *Form) SetAmount(a string)         { f.amount = a }
func (f *Form) SetComment(c string)        { f.comment = c }

// History returns confirmed transfers, most recent first.
func (f *Form) History() []Record { return f.history }

func (f *Form) Templates() []Template { return f.templates }

// AmountValue parses the amount as typed. Empty or malformed input parses
// to 0 and simply fails the presence check.
func (f *Form) AmountValue() float64 {
	v, _ := strconv.ParseFloat(f.amount, 64)
	return v
}

// CanConfirm reports whether the confirm action is enabled: amount present,
// positive and within MaxAmount; internal transfers need distinct accounts;
// every other type needs a recipient.
func (f *Form) CanConfirm() bool {
	amount := f.AmountValue()

	if f.amount == "" || amount <= 0 || amount > MaxAmount {
		return false
	}

	if f.typ == Internal {
		return f.fromAccount != f.toAccount
	}

	return f.recipient != ""
}

// Confirm appends a record to history and resets amount, comment and
// recipient. Account selections survive, matching the form's behaviour of
// keeping the chosen accounts for the next transfer.
func (f *Form) Confirm(now time.Time) (Record, error) {
	if !f.CanConfirm() {
		return Record{}, ErrCannotConfirm
	}

	rec := Record{
		ID:      now.UnixMilli(),
		Type:    f.typ,
		Amount:  f.AmountValue(),
		Comment: f.comment,
		Date:    now.Format("Jan 02 2006"),
	}

	if f.typ == Internal {
		rec.From = f.accountName(f.fromAccount)
		rec.To = f.accountName(f.toAccount)
	} else {
		rec.From = f.accountName(f.sourceAccount)
		rec.To = f.recipient
	}

	f.history = append([]Record{rec}, f.history...)
	f.amount = ""
	f.comment = ""
	f.recipient = ""

	return rec, nil
}

// SaveTemplate snapshots the current form, most recent first.
func (f *Form) SaveTemplate(now time.Time) Template {
	tpl := Template{
		ID:      now.UnixMilli(),
		Type:    f.typ,
		Amount:  f.amount,
		Comment: f.comment,
	}

	if f.typ == Internal {
		tpl.From = f.fromAccount
		tpl.To = f.toAccount
	} else {
		tpl.From = f.sourceAccount
		tpl.To = f.recipient
	}

	f.templates = append([]Template{tpl}, f.templates...)

	return tpl
}

// ApplyTemplate overwrites the form from the stored snapshot, including
// switching the transfer type.
func (f *Form) ApplyTemplate(id int64) error {
	for _, tpl := range f.templates {
		if tpl.ID != id {
			continue
		}

		f.typ = tpl.Type

		if tpl.Type == Internal {
			f.fromAccount = tpl.From
			f.toAccount = tpl.To
		} else {
			f.sourceAccount = tpl.From
			f.recipient = tpl.To
		}

		f.amount = tpl.Amount
		f.comment = tpl.Comment

		return nil
	}

	return ErrTemplateNotFound
}

func (f *Form) DeleteTemplate(id int64) {
	kept := f.templates[:0]

	for _, tpl := range f.templates {
		if tpl.ID != id {
			kept = append(kept, tpl)
		}
	}

	f.templates = kept
}

func (f *Form) accountName(id string) string {
	for _, a := range f.accounts {
		if a.ID == id {
			return a.Name
		}
	}

	return ""
}
