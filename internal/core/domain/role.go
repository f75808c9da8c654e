package domain

// Role is the job function of a user; it decides which sections of the application they reach.
type Role string

const (
	RoleAdmin           Role = "admin"
	RoleFinancial       Role = "financial"
	RoleSales           Role = "sales"
	RoleCustomerService Role = "customer_service"
	RoleOperations      Role = "operations"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	_, ok := roleSections[r]
	return ok
}

// Section identifies a functional area of the application.
type Section string

const (
	SectionDashboard  Section = "dashboard"
	SectionCustomers  Section = "customers"
	SectionShipments  Section = "shipments"
	SectionAccounting Section = "accounting"
	SectionReports    Section = "reports"
	SectionSettings   Section = "settings"
)

// sectionOrder is the display order of sections.
var sectionOrder = []Section{
	SectionDashboard,
	SectionCustomers,
	SectionShipments,
	SectionAccounting,
	SectionReports,
	SectionSettings,
}

var roleSections = map[Role]map[Section]bool{
	RoleAdmin: {
		SectionDashboard: true, SectionCustomers: true, SectionShipments: true,
		SectionAccounting: true, SectionReports: true, SectionSettings: true,
	},
	RoleFinancial: {
		SectionDashboard: true, SectionCustomers: true, SectionShipments: true,
		SectionAccounting: true, SectionReports: true,
	},
	RoleSales:           {SectionDashboard: true, SectionCustomers: true, SectionShipments: true},
	RoleCustomerService: {SectionDashboard: true, SectionCustomers: true, SectionShipments: true},
	RoleOperations:      {SectionDashboard: true, SectionCustomers: true, SectionShipments: true},
}

// CanAccess reports whether role r may open section s.
func (r Role) CanAccess(s Section) bool {
	return roleSections[r][s]
}

// Sections returns the sections permitted for r in display order.
func (r Role) Sections() []Section {
	allowed := roleSections[r]
	sections := make([]Section, 0, len(allowed))
	for _, s := range sectionOrder {
		if allowed[s] {
			sections = append(sections, s)
		}
	}
	return sections
}
