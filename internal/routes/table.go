// Package routes maps console URL paths to pages.
package routes

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Page identifies a console screen.
type Page string

const (
	PageHome                    Page = "home"
	PageServerStatus            Page = "server-status"
	PageProductionMenu          Page = "production-menu"
	PageProductionDashboard     Page = "production-dashboard"
	PageProductionLogin         Page = "production-login"
	PageProductionPlansView     Page = "production-plans-view"
	PageCoordinatorLogin        Page = "coordinator-login"
	PageProductionCoordinator   Page = "production-coordinator"
	PageProductionKoordinator   Page = "production-koordinator"
	PageSupervisorLogin         Page = "supervisor-login"
	PageProductionSupervisor    Page = "production-supervisor"
	PageAdminProduksiLogin      Page = "admin-produksi-login"
	PageProductionAdminProduksi Page = "production-admin-produksi"
	PageProductionInput         Page = "production-input"
	PageProductionLogs          Page = "production-logs"
	PageProductionLogsEdit      Page = "production-logs-edit"
	PageProductionTargetsList   Page = "production-targets-list"
	PageProductionTargetForm    Page = "production-target-form"
	PageAttendancesList         Page = "attendances-list"
	PageAttendanceForm          Page = "attendance-form"
	PageMasterDataLogin         Page = "master-data-login"
	PageMasterData              Page = "master-data"
	PageDivisionsList           Page = "divisions-list"
	PageDivisionForm            Page = "division-form"
	PageDepartmentsList         Page = "departments-list"
	PageDepartmentForm          Page = "department-form"
	PagePositionsList           Page = "positions-list"
	PagePositionForm            Page = "position-form"
	PageSubPositionsList        Page = "sub-positions-list"
	PageSubPositionForm         Page = "sub-position-form"
	PageWorkersList             Page = "workers-list"
	PageWorkerForm              Page = "worker-form"
	PageShiftsList              Page = "shifts-list"
	PageShiftForm               Page = "shift-form"
	PageSuppliersList           Page = "suppliers-list"
	PageSupplierForm            Page = "supplier-form"
	PageItemsList               Page = "items-list"
	PageItemForm                Page = "item-form"
	PageProblemCommentsList     Page = "problem-comments-list"
	PageProblemCommentForm      Page = "problem-comment-form"
)

// Title returns a human readable page name. A cases.Caser keeps state, so
// each call builds its own.
func (p Page) Title() string {
	return cases.Title(language.Indonesian).String(strings.ReplaceAll(string(p), "-", " "))
}

// Route pairs a path pattern with its page. Segments starting with ':' bind
// a parameter.
type Route struct {
	Pattern string
	Page    Page
	// Legacy marks aliases kept for old bookmarks.
	Legacy bool
}

// Match is the result of resolving a path.
type Match struct {
	Route  Route
	Params map[string]string
}

// Table is an ordered route list. The first matching route wins.
type Table struct {
	routes   []Route
	compiled [][]string
}

// NewTable compiles routes in the given order.
func NewTable(routes []Route) *Table {
	t := &Table{routes: append([]Route(nil), routes...)}
	t.compiled = make([][]string, len(t.routes))
	for i, r := range t.routes {
		t.compiled[i] = splitPath(r.Pattern)
	}
	return t
}

// Routes returns a copy of the table.
func (t *Table) Routes() []Route {
	return append([]Route(nil), t.routes...)
}

// Match resolves path. Static segments compare case-insensitively and a
// trailing slash is ignored.
func (t *Table) Match(path string) (Match, bool) {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	segments := splitPath(path)
	for i, pattern := range t.compiled {
		params, ok := matchSegments(pattern, segments)
		if ok {
			return Match{Route: t.routes[i], Params: params}, true
		}
	}
	return Match{}, false
}

func matchSegments(pattern, segments []string) (map[string]string, bool) {
	if len(pattern) != len(segments) {
		return nil, false
	}
	var params map[string]string
	for i, seg := range pattern {
		if strings.HasPrefix(seg, ":") {
			if segments[i] == "" {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string)
			}
			params[seg[1:]] = segments[i]
			continue
		}
		if !strings.EqualFold(seg, segments[i]) {
			return nil, false
		}
	}
	return params, true
}

func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
