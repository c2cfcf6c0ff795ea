package models

type Department struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Class struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Departments and Classes are fixed lookup tables; they are not derived from
// the student dataset.
var Departments = []Department{
	{ID: "dept1", Name: "Computer Science"},
	{ID: "dept2", Name: "Electronics"},
	{ID: "dept3", Name: "Mechanical"},
	{ID: "dept4", Name: "Civil"},
}

var Classes = []Class{
	{ID: "class1", Name: "A"},
	{ID: "class2", Name: "B"},
	{ID: "class3", Name: "C"},
}
