package domain

const (
	MetadataKeyFirstLesson = "first_lesson"
)

type NewCustomer struct {
	Name        string
	Email       string
	FirstLesson string
}

// CustomerUpdate holds the fields of a customer that may change. Empty strings
// and nil maps are left untouched.
type CustomerUpdate struct {
	Name                 string
	Email                string
	Metadata             map[string]string
	DefaultPaymentMethod string
}

type BillingDetails struct {
	Name  string
	Email string
}

func (b BillingDetails) IsEmpty() bool {
	return b.Name == "" && b.Email == ""
}
