package routes

// Console is the route table of the production floor console.
var Console = NewTable([]Route{
	{Pattern: "/", Page: PageHome},
	{Pattern: "/server-status", Page: PageServerStatus},
	{Pattern: "/production-menu", Page: PageProductionMenu},
	{Pattern: "/ProductionMenu", Page: PageProductionMenu, Legacy: true},
	{Pattern: "/production-dashboard", Page: PageProductionDashboard},
	{Pattern: "/production-login", Page: PageProductionLogin},
	{Pattern: "/ProductionLogin", Page: PageProductionLogin, Legacy: true},
	{Pattern: "/production-operator", Page: PageProductionLogin},
	{Pattern: "/production-plans-view", Page: PageProductionPlansView},
	{Pattern: "/coordinator-login", Page: PageCoordinatorLogin},
	{Pattern: "/production-coordinator", Page: PageProductionCoordinator},
	{Pattern: "/ProductionKoordinator", Page: PageProductionKoordinator, Legacy: true},
	{Pattern: "/supervisor-login", Page: PageSupervisorLogin},
	{Pattern: "/production-supervisor", Page: PageProductionSupervisor},
	{Pattern: "/admin-produksi-login", Page: PageAdminProduksiLogin},
	{Pattern: "/production-admin-produksi", Page: PageProductionAdminProduksi},
	// Admin sees every log here.
	{Pattern: "/production-admin", Page: PageProductionLogs, Legacy: true},
	{Pattern: "/ProductionInput", Page: PageProductionInput, Legacy: true},
	{Pattern: "/production-input", Page: PageProductionInput},
	{Pattern: "/ProductionLogs", Page: PageProductionLogs, Legacy: true},
	{Pattern: "/production-logs", Page: PageProductionLogs},
	{Pattern: "/production-logs/create", Page: PageProductionLogsEdit},
	{Pattern: "/production-logs/:id/edit", Page: PageProductionLogsEdit},
	{Pattern: "/ProductionLogsEdit", Page: PageProductionLogsEdit, Legacy: true},

	{Pattern: "/production-targets", Page: PageProductionTargetsList},
	{Pattern: "/production-targets/create", Page: PageProductionTargetForm},
	{Pattern: "/production-targets/:id/edit", Page: PageProductionTargetForm},

	{Pattern: "/attendances", Page: PageAttendancesList},
	{Pattern: "/attendances/create", Page: PageAttendanceForm},
	{Pattern: "/attendances/:id/edit", Page: PageAttendanceForm},

	{Pattern: "/master-data-login", Page: PageMasterDataLogin},
	{Pattern: "/master-data", Page: PageMasterData},

	{Pattern: "/divisions", Page: PageDivisionsList},
	{Pattern: "/divisions/create", Page: PageDivisionForm},
	{Pattern: "/divisions/:id/edit", Page: PageDivisionForm},

	{Pattern: "/departments", Page: PageDepartmentsList},
	{Pattern: "/departments/create", Page: PageDepartmentForm},
	{Pattern: "/departments/:id/edit", Page: PageDepartmentForm},

	{Pattern: "/positions", Page: PagePositionsList},
	{Pattern: "/positions/create", Page: PagePositionForm},
	{Pattern: "/positions/:id/edit", Page: PagePositionForm},

	{Pattern: "/sub-positions", Page: PageSubPositionsList},
	{Pattern: "/sub-positions/create", Page: PageSubPositionForm},
	{Pattern: "/sub-positions/:id/edit", Page: PageSubPositionForm},

	{Pattern: "/workers", Page: PageWorkersList},
	{Pattern: "/workers/create", Page: PageWorkerForm},
	{Pattern: "/workers/:id/edit", Page: PageWorkerForm},

	{Pattern: "/shifts", Page: PageShiftsList},
	{Pattern: "/shifts/create", Page: PageShiftForm},
	{Pattern: "/shifts/:id/edit", Page: PageShiftForm},

	{Pattern: "/suppliers", Page: PageSuppliersList},
	{Pattern: "/suppliers/create", Page: PageSupplierForm},
	{Pattern: "/suppliers/:id/edit", Page: PageSupplierForm},

	{Pattern: "/items", Page: PageItemsList},
	{Pattern: "/items/create", Page: PageItemForm},
	{Pattern: "/items/:id/edit", Page: PageItemForm},

	{Pattern: "/problem-comments", Page: PageProblemCommentsList},
	{Pattern: "/problem-comments/create", Page: PageProblemCommentForm},
	{Pattern: "/problem-comments/:id/edit", Page: PageProblemCommentForm},

	// Placeholders until the tax and option screens exist.
	{Pattern: "/pajak", Page: PageHome},
	{Pattern: "/pilihan3", Page: PageHome},
	{Pattern: "/pilihan4", Page: PageHome},
})
