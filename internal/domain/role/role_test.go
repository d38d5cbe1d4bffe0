package role_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/carwash-api/internal/domain/role"
)

func TestParse_RolesConocidos(t *testing.T) {
	cases := []struct {
		value, empType string
		want           role.Role
	}{
		{"admin", "", role.Role{Kind: role.KindAdmin}},
		{"sub-admin", "", role.Role{Kind: role.KindSubAdmin}},
		{"hr", "", role.Role{Kind: role.KindHR}},
		{"customer", "", role.Role{Kind: role.KindCustomer}},
		{"sales", "", role.Role{Kind: role.KindSales}},
		{"employee", "washer", role.Role{Kind: role.KindEmployee, Subtype: role.SubtypeWasher}},
		{"employee", "sales", role.Role{Kind: role.KindEmployee, Subtype: role.SubtypeSales}},
		{"employee", "", role.Role{Kind: role.KindEmployee, Subtype: role.SubtypeNone}},
		{"employee", "pilot", role.Role{Kind: role.KindEmployee, Subtype: role.SubtypeNone}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, role.Parse(tc.value, tc.empType), "Parse(%q, %q)", tc.value, tc.empType)
	}
}

func TestParse_RolDesconocido(t *testing.T) {
	r := role.Parse("superuser", "")
	assert.False(t, r.Known())
	assert.Equal(t, role.PathLogin, r.Home())
	assert.False(t, r.Satisfies(role.Require("superuser", "admin")))
}

func TestParse_ComparacionExacta(t *testing.T) {
	for _, v := range []string{"Admin", " admin", "admin ", "CUSTOMER", "Sub-Admin"} {
		r := role.Parse(v, "")
		assert.False(t, r.Known(), "Parse(%q)", v)
		assert.Equal(t, role.PathLogin, r.Home())
	}
	assert.Equal(t, role.SubtypeNone, role.Parse("employee", "Washer").Subtype)
	assert.False(t, role.Require("Admin").Has(role.KindAdmin))
}

func TestParse_TipoSoloAplicaAEmployee(t *testing.T) {
	r := role.Parse("customer", "washer")
	assert.Equal(t, role.SubtypeNone, r.Subtype)
	assert.Equal(t, "", r.EmployeeType())
}

func TestSatisfies(t *testing.T) {
	cases := []struct {
		name     string
		r        role.Role
		required []string
		want     bool
	}{
		{"admin en ruta admin", role.Parse("admin", ""), []string{"admin"}, true},
		{"hr en ruta multi-rol", role.Parse("hr", ""), []string{"admin", "sub-admin", "hr"}, true},
		{"customer en ruta admin", role.Parse("customer", ""), []string{"admin"}, false},
		{"employee sales en ruta sales", role.Parse("employee", "sales"), []string{"sales"}, true},
		{"employee washer en ruta sales", role.Parse("employee", "washer"), []string{"sales"}, false},
		{"employee sin tipo en ruta sales", role.Parse("employee", ""), []string{"sales"}, false},
		{"employee washer en ruta employee", role.Parse("employee", "washer"), []string{"employee"}, true},
		{"sales de primer nivel en ruta sales", role.Parse("sales", ""), []string{"sales"}, true},
		{"sales de primer nivel en ruta employee", role.Parse("sales", ""), []string{"employee"}, false},
		{"requirement vacío", role.Parse("admin", ""), nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.r.Satisfies(role.Require(tc.required...)))
		})
	}
}

func TestHome(t *testing.T) {
	cases := map[string]struct {
		r    role.Role
		want string
	}{
		"admin":           {role.Parse("admin", ""), role.PathAdminHome},
		"sub-admin":       {role.Parse("sub-admin", ""), role.PathAdminHome},
		"hr":              {role.Parse("hr", ""), role.PathAdminHome},
		"employee sales":  {role.Parse("employee", "sales"), role.PathSalesHome},
		"employee washer": {role.Parse("employee", "washer"), role.PathWasherHome},
		"employee rider":  {role.Parse("employee", "rider"), role.PathEmployeeHome},
		"employee":        {role.Parse("employee", ""), role.PathEmployeeHome},
		"customer":        {role.Parse("customer", ""), role.PathCustomerHome},
		"sales":           {role.Parse("sales", ""), role.PathLogin},
		"vacío":           {role.Parse("", ""), role.PathLogin},
	}
	for name, tc := range cases {
		assert.Equal(t, tc.want, tc.r.Home(), name)
	}
}

func TestString_RoundTrip(t *testing.T) {
	for _, v := range []string{"admin", "sub-admin", "hr", "employee", "customer", "sales"} {
		assert.Equal(t, v, role.Parse(v, "").String())
	}
	assert.Equal(t, "rider", role.Parse("employee", "rider").EmployeeType())
}
