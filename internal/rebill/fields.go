package rebill

// Identifier fields
const (
	FieldRebillCustomerID = "RebillCustomerID"
	FieldRebillID         = "RebillID"
)

// Transaction query arguments
const (
	FieldStartDate = "startDate"
	FieldEndDate   = "endDate"
	FieldStatus    = "status"
)

// Remote operations
const (
	OpCreateRebillCustomer = "CreateRebillCustomer"
	OpUpdateRebillCustomer = "UpdateRebillCustomer"
	OpDeleteRebillCustomer = "DeleteRebillCustomer"
	OpQueryRebillCustomer  = "QueryRebillCustomer"
	OpCreateRebillEvent    = "CreateRebillEvent"
	OpUpdateRebillEvent    = "UpdateRebillEvent"
	OpDeleteRebillEvent    = "DeleteRebillEvent"
	OpQueryRebillEvent     = "QueryRebillEvent"
	OpQueryTransactions    = "QueryTransactions"
	OpQueryNextTransaction = "QueryNextTransaction"
)

// Fields is a customer or rebill event record keyed by remote field name
type Fields map[string]string

// CustomerFields lists the customer record fields in remote declaration order
var CustomerFields = []string{
	"customerTitle",
	"customerFirstName",
	"customerLastName",
	"customerAddress",
	"customerSuburb",
	"customerState",
	"customerCompany",
	"customerPostCode",
	"customerCountry",
	"customerEmail",
	"customerFax",
	"customerPhone1",
	"customerPhone2",
	"customerRef",
	"customerJobDesc",
	"customerComments",
	"customerURL",
}

// RequiredCustomerFields must be supplied on add and edit; the rest default to ""
var RequiredCustomerFields = []string{
	"customerFirstName",
	"customerLastName",
	"customerEmail",
}

// PaymentFields lists the rebill event fields in remote declaration order.
// All of them are required.
var PaymentFields = []string{
	FieldRebillCustomerID,
	"RebillInvRef",
	"RebillInvDes",
	"RebillCCName",
	"RebillCCNumber",
	"RebillCCExpMonth",
	"RebillCCExpYear",
	"RebillInitAmt",
	"RebillInitDate",
	"RebillRecurAmt",
	"RebillStartDate",
	"RebillInterval",
	"RebillIntervalType",
	"RebillEndDate",
}

var (
	customerFieldSet = toSet(CustomerFields)
	paymentFieldSet  = toSet(PaymentFields)
)

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// firstMissing returns the first name in required that fields lacks
func firstMissing(fields Fields, required []string) (string, bool) {
	for _, name := range required {
		if _, ok := fields[name]; !ok {
			return name, true
		}
	}
	return "", false
}

// unknownFields returns keys of fields outside known
func unknownFields(fields Fields, known map[string]bool) []string {
	var out []string
	for name := range fields {
		if !known[name] {
			out = append(out, name)
		}
	}
	return out
}
