package role

// Rutas fijas de redirección.
const (
	PathLogin        = "/login"
	PathAdminHome    = "/admin/dashboard"
	PathSalesHome    = "/sales/dashboard"
	PathWasherHome   = "/washer/dashboard"
	PathEmployeeHome = "/employee/dashboard"
	PathCustomerHome = "/customer/dashboard"
)

// Home devuelve el dashboard propio del rol.
// Un rol "sales" de primer nivel no tiene home asignado y cae en login, igual que un rol desconocido.
func (r Role) Home() string {
	switch r.Kind {
	case KindAdmin, KindSubAdmin, KindHR:
		return PathAdminHome
	case KindEmployee:
		switch r.Subtype {
		case SubtypeSales:
			return PathSalesHome
		case SubtypeWasher:
			return PathWasherHome
		default:
			return PathEmployeeHome
		}
	case KindCustomer:
		return PathCustomerHome
	default:
		return PathLogin
	}
}
