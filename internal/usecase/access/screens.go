package access

import "slices"

type Screen string

const (
	ScreenLogin          Screen = "login"
	ScreenRegister       Screen = "register"
	ScreenForgotPassword Screen = "forgot_password"

	ScreenAdminServices Screen = "admin_services"
	ScreenTransactions  Screen = "transactions"
	ScreenCustomers     Screen = "customers"
	ScreenAdminProfile  Screen = "admin_profile"

	ScreenCustomerServices Screen = "customer_services"
	ScreenAppointments     Screen = "appointments"
	ScreenCustomerProfile  Screen = "customer_profile"
)

var (
	authScreens     = []Screen{ScreenLogin, ScreenRegister, ScreenForgotPassword}
	adminScreens    = []Screen{ScreenAdminServices, ScreenTransactions, ScreenCustomers, ScreenAdminProfile}
	customerScreens = []Screen{ScreenCustomerServices, ScreenAppointments, ScreenCustomerProfile}
)

// Tree returns the screens mounted in state; the first one is the root.
// While checking nothing is mounted.
func Tree(state State) []Screen {
	switch state {
	case StateUnauthenticated:
		return slices.Clone(authScreens)
	case StateAdmin:
		return slices.Clone(adminScreens)
	case StateCustomer:
		return slices.Clone(customerScreens)
	default:
		return nil
	}
}

func (s Screen) String() string {
	return string(s)
}

// IsAuthScreen reports whether s belongs to the signed-out tree.
func (s Screen) IsAuthScreen() bool {
	return slices.Contains(authScreens, s)
}
