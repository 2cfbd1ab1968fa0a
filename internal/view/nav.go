package view

// Page is one entry of the navigation shell.
type Page struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Label string `json:"label"`
	// Sidebar is false for pages reached another way (login, profile, gcash).
	Sidebar bool `json:"sidebar"`
}

// Login is where sign-out sends the user.
var Login = Page{Name: "login", Path: "/", Label: "Login"}

// Pages lists the ten routable views in sidebar order.
var Pages = []Page{
	Login,
	{Name: "dashboard", Path: "/dashboard", Label: "Dashboard", Sidebar: true},
	{Name: "employees", Path: "/employees", Label: "Employees", Sidebar: true},
	{Name: "tenants", Path: "/tenants", Label: "Tenants", Sidebar: true},
	{Name: "unpaid", Path: "/unpaid", Label: "Unpaid Payments", Sidebar: true},
	{Name: "history", Path: "/history", Label: "Payment History", Sidebar: true},
	{Name: "sanction", Path: "/sanction", Label: "Sanctions", Sidebar: true},
	{Name: "account-management", Path: "/account-management", Label: "Account Management", Sidebar: true},
	{Name: "profile", Path: "/profile", Label: "Profile"},
	{Name: "gcash", Path: "/gcash", Label: "GCash Accounts"},
}
