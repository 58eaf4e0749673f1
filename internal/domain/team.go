package domain

type EmploymentType string

const (
	EmploymentTypeSalaried   EmploymentType = "salaried"
	EmploymentTypeContractor EmploymentType = "contractor"
	EmploymentTypeFreelancer EmploymentType = "freelancer"
)

type StaffingPriority string

const (
	StaffingPriorityHigh   StaffingPriority = "high"
	StaffingPriorityMedium StaffingPriority = "medium"
	StaffingPriorityLow    StaffingPriority = "low"
)

// Person é um membro atual da equipe
type Person struct {
	ID             string         `json:"id"`
	Name           string         `json:"name" validate:"required"`
	Role           string         `json:"role" validate:"required"`
	Vertical       Vertical       `json:"vertical" validate:"required,oneof=B2B B2B2C B2G B2S Franchise all"`
	Salary         float64        `json:"salary"`
	EmploymentType EmploymentType `json:"employment_type" validate:"required,oneof=salaried contractor freelancer"`
	HireDate       Date           `json:"hire_date"`
}

// StaffingNeed é uma contratação planejada
type StaffingNeed struct {
	ID              string           `json:"id"`
	Role            string           `json:"role" validate:"required"`
	Vertical        Vertical         `json:"vertical" validate:"required,oneof=B2B B2B2C B2G B2S Franchise all"`
	Quantity        int              `json:"quantity" validate:"required"`
	EstimatedSalary float64          `json:"estimated_salary"`
	Priority        StaffingPriority `json:"priority" validate:"required,oneof=high medium low"`
	Justification   string           `json:"justification"`
}

// PersonGroup agrupa membros da equipe por vertical (incluindo "all")
type PersonGroup struct {
	Vertical Vertical `json:"vertical"`
	Members  []Person `json:"members"`
}
