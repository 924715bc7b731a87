package converter

// Collection names in the document store.
const (
	CollectionAdmins        = "admins"
	CollectionCustomers     = "customers"
	CollectionServices      = "services"
	CollectionTransactions  = "transactions"
	CollectionAccounts      = "accounts"
	CollectionAccountEmails = "account_emails"
)

// Field names shared by queries and converters.
const (
	FieldName        = "name"
	FieldDisplayName = "displayName"
	FieldEmail       = "email"
	FieldCreatedAt   = "createdAt"
	FieldUserID      = "userId"
	FieldStatus      = "status"
)
