package storesvc

import "github.com/sabordecasa/storefront/internal/service/models/view"

// allowedTransitions encodes the view state machine:
// catalog ⇄ cart ⇄ checkout → success → catalog, catalog ⇄ about, and
// catalog → admin, which additionally requires the admin capability.
var allowedTransitions = map[view.View][]view.View{
	view.ViewCatalog:  {view.ViewCart, view.ViewAbout, view.ViewAdmin},
	view.ViewCart:     {view.ViewCatalog, view.ViewCheckout},
	view.ViewCheckout: {view.ViewCart, view.ViewSuccess},
	view.ViewSuccess:  {view.ViewCatalog},
	view.ViewAbout:    {view.ViewCatalog},
	view.ViewAdmin:    {view.ViewCatalog},
}

// View returns the current view.
func (s *StoreService) View() view.View {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.view
}

// Navigate moves to the target view when the transition is allowed.
// Navigating to admin without the capability flag is a silent no-op: the
// current view is kept and no error is reported, mirroring the admin panel
// simply not rendering for non-admins. Any other disallowed transition is
// also ignored. The resulting view is returned either way.
func (s *StoreService) Navigate(target view.View) view.View {
	s.mu.Lock()
	defer s.mu.Unlock()

	if target == view.ViewAdmin && !s.isAdmin {
		return s.view
	}

	for _, allowed := range allowedTransitions[s.view] {
		if allowed == target {
			s.view = target
			break
		}
	}

	return s.view
}
