// Package services contains the application services of the Multitool
// client: the session container that owns authentication state, and one
// service per feature screen.
//
// Feature services follow one pattern: lists are held in a
// resource.Collection, every mutation is followed by a full refetch, screens
// made of several independent lists load them with resource.LoadSections,
// and quota-gated actions are refused locally from the latest usage
// snapshot. Services depend on small interfaces satisfied by
// *client.HTTPClient so tests can substitute fakes.
package services
