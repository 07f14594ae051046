package results

// DashboardStats is the practice history shown on the dashboard until real
// per-user history replaces it.
var DashboardStats = []DisciplineCount{
	{Discipline: "Internal Medicine", Correct: 12, Total: 15},
	{Discipline: "Surgery", Correct: 8, Total: 12},
	{Discipline: "Paediatrics", Correct: 15, Total: 18},
	{Discipline: "Obstetrics & Gynaecology", Correct: 5, Total: 10},
	{Discipline: "Psychiatry", Correct: 9, Total: 10},
}

func Dashboard() []DisciplineCount {
	return append([]DisciplineCount(nil), DashboardStats...)
}
