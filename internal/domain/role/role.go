// Package role modela los roles del sistema como unión etiquetada.
//
// El rol "employee" se subdivide por tipo de empleado (sales, washer, rider).
// El sub-rol de ventas no es un valor de rol propio en la sesión: un
// employee con tipo "sales" satisface una ruta que exige "sales".
package role

// Valores de rol tal como se guardan en la sesión y en la tabla users.
const (
	Admin    = "admin"
	SubAdmin = "sub-admin"
	HR       = "hr"
	Employee = "employee"
	Customer = "customer"
	Sales    = "sales"
)

// Tipos de empleado.
const (
	TypeSales  = "sales"
	TypeWasher = "washer"
	TypeRider  = "rider"
)

// Kind discrimina la unión.
type Kind int

const (
	KindUnknown Kind = iota
	KindAdmin
	KindSubAdmin
	KindHR
	KindCustomer
	KindEmployee
	KindSales
)

// Subtype solo tiene sentido cuando Kind == KindEmployee.
type Subtype int

const (
	SubtypeNone Subtype = iota
	SubtypeSales
	SubtypeWasher
	SubtypeRider
)

// Role = Admin | SubAdmin | HR | Customer | Employee{Subtype} | Sales | Unknown.
type Role struct {
	Kind    Kind
	Subtype Subtype
}

// Parse convierte los valores crudos de la sesión en un Role.
// La comparación es exacta: "Admin" o " admin" son roles desconocidos.
// Un rol no reconocido produce KindUnknown; un tipo de empleado no reconocido, SubtypeNone.
func Parse(roleValue, employeeType string) Role {
	switch roleValue {
	case Admin:
		return Role{Kind: KindAdmin}
	case SubAdmin:
		return Role{Kind: KindSubAdmin}
	case HR:
		return Role{Kind: KindHR}
	case Customer:
		return Role{Kind: KindCustomer}
	case Sales:
		return Role{Kind: KindSales}
	case Employee:
		return Role{Kind: KindEmployee, Subtype: parseSubtype(employeeType)}
	default:
		return Role{Kind: KindUnknown}
	}
}

func parseSubtype(s string) Subtype {
	switch s {
	case TypeSales:
		return SubtypeSales
	case TypeWasher:
		return SubtypeWasher
	case TypeRider:
		return SubtypeRider
	default:
		return SubtypeNone
	}
}

// Known informa si el rol es uno de los valores válidos.
func (r Role) Known() bool { return r.Kind != KindUnknown }

// String devuelve el valor de rol tal como se persiste.
func (r Role) String() string {
	switch r.Kind {
	case KindAdmin:
		return Admin
	case KindSubAdmin:
		return SubAdmin
	case KindHR:
		return HR
	case KindCustomer:
		return Customer
	case KindEmployee:
		return Employee
	case KindSales:
		return Sales
	default:
		return ""
	}
}

// EmployeeType devuelve el tipo de empleado persistido ("" si no aplica).
func (r Role) EmployeeType() string {
	if r.Kind != KindEmployee {
		return ""
	}
	switch r.Subtype {
	case SubtypeSales:
		return TypeSales
	case SubtypeWasher:
		return TypeWasher
	case SubtypeRider:
		return TypeRider
	default:
		return ""
	}
}

// Requirement es el conjunto de roles que una ruta acepta.
type Requirement map[Kind]struct{}

// Require normaliza uno o varios valores de rol a un Requirement.
// Los valores desconocidos se ignoran: nunca pueden ser satisfechos.
func Require(roles ...string) Requirement {
	req := make(Requirement, len(roles))
	for _, v := range roles {
		r := Parse(v, "")
		if r.Known() {
			req[r.Kind] = struct{}{}
		}
	}
	return req
}

// Has informa si el requirement contiene el kind.
func (q Requirement) Has(k Kind) bool {
	_, ok := q[k]
	return ok
}

// Satisfies decide si el rol cumple el requirement.
func (r Role) Satisfies(req Requirement) bool {
	switch r.Kind {
	case KindUnknown:
		return false
	case KindEmployee:
		if req.Has(KindEmployee) {
			return true
		}
		// Sub-rol de ventas: employee{sales} entra en rutas de "sales".
		return r.Subtype == SubtypeSales && req.Has(KindSales)
	default:
		return req.Has(r.Kind)
	}
}
