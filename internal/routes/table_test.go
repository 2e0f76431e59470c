package routes

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConsoleMatchesStaticAndParamRoutes(t *testing.T) {
	cases := []struct {
		path   string
		page   Page
		params map[string]string
	}{
		{"/", PageHome, nil},
		{"", PageHome, nil},
		{"/workers", PageWorkersList, nil},
		{"/workers/", PageWorkersList, nil},
		{"/workers/create", PageWorkerForm, nil},
		{"/workers/12/edit", PageWorkerForm, map[string]string{"id": "12"}},
		{"/production-logs/99/edit?tab=qc", PageProductionLogsEdit, map[string]string{"id": "99"}},
		{"/production-admin", PageProductionLogs, nil},
		{"/production-operator", PageProductionLogin, nil},
		{"/pajak", PageHome, nil},
	}
	for _, tc := range cases {
		m, ok := Console.Match(tc.path)
		require.True(t, ok, tc.path)
		require.Equal(t, tc.page, m.Route.Page, tc.path)
		require.Equal(t, tc.params, m.Params, tc.path)
	}
}

func TestConsoleLegacyAliases(t *testing.T) {
	m, ok := Console.Match("/ProductionMenu")
	require.True(t, ok)
	require.Equal(t, PageProductionMenu, m.Route.Page)
	require.True(t, m.Route.Legacy)

	// Static segments ignore case, so the legacy alias listed first wins.
	m, ok = Console.Match("/productioninput")
	require.True(t, ok)
	require.Equal(t, "/ProductionInput", m.Route.Pattern)

	m, ok = Console.Match("/production-input")
	require.True(t, ok)
	require.Equal(t, "/production-input", m.Route.Pattern)
	require.False(t, m.Route.Legacy)
}

func TestMatchUnknownPath(t *testing.T) {
	for _, path := range []string{"/nope", "/workers/1", "/workers//edit", "/workers/1/edit/extra"} {
		_, ok := Console.Match(path)
		require.False(t, ok, path)
	}
}

func TestFirstMatchWins(t *testing.T) {
	table := NewTable([]Route{
		{Pattern: "/items/:number", Page: PageItemForm},
		{Pattern: "/items/create", Page: PageItemsList},
	})
	m, ok := table.Match("/items/create")
	require.True(t, ok)
	require.Equal(t, PageItemForm, m.Route.Page)
	require.Equal(t, map[string]string{"number": "create"}, m.Params)
}

func TestPageTitle(t *testing.T) {
	require.Equal(t, "Production Logs Edit", PageProductionLogsEdit.Title())
	require.Equal(t, "Home", PageHome.Title())
}

func TestPageTitleConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	titles := make([][]string, 8)
	for g := range titles {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				titles[g] = append(titles[g], PageProductionLogsEdit.Title())
			}
		}(g)
	}
	wg.Wait()
	for _, got := range titles {
		require.Len(t, got, 200)
		for _, title := range got {
			require.Equal(t, "Production Logs Edit", title)
		}
	}
	require.Equal(t, "Production Admin Produksi", PageProductionAdminProduksi.Title())
}

func TestRoutesReturnsCopy(t *testing.T) {
	routes := Console.Routes()
	routes[0].Page = PageItemForm
	m, _ := Console.Match("/")
	require.Equal(t, PageHome, m.Route.Page)
}
