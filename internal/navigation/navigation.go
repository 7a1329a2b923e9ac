// Package navigation models the screen tree of the app and how parameters
// flow down it. There is no session store: a navigator receives an identity
// and copies it into the initial params of every route it registers, the same
// way all the way down to the leaf screens.
package navigation

import (
	"fmt"
	"strings"

	dm "travelsurvey/internal/models/domain_models"
	"travelsurvey/pkg/utils"
)

type Kind string

const (
	KindStack  Kind = "stack"
	KindDrawer Kind = "drawer"
	KindTabs   Kind = "tabs"
	KindScreen Kind = "screen"
)

// Route names.
const (
	RouteRoot           = "Root"
	RouteLogin          = "Login"
	RouteDrawer         = "DrawerNavigator"
	RouteHome           = "Home"
	RouteHomeScreen     = "HomeScreen"
	RouteTabs           = "TabNavigator"
	RouteSurvey         = "Survey"
	RouteSurveyForm     = "SurveyForm"
	RouteResults        = "Results"
	RouteSurveyResults  = "SurveyResults"
	RouteNearby         = "Nearby"
	RouteProfile        = "Profile"
	RouteProfileScreen  = "ProfileScreen"
	RouteSettings       = "Settings"
	RouteSettingsScreen = "SettingsScreen"
)

const pathSeparator = "/"

// Paths below the root, as accepted by Navigate.
var (
	PathLogin    = join(RouteLogin)
	PathDrawer   = join(RouteDrawer)
	PathHome     = join(RouteDrawer, RouteHome, RouteHomeScreen)
	PathTabs     = join(RouteDrawer, RouteHome, RouteTabs)
	PathSurvey   = join(RouteDrawer, RouteHome, RouteTabs, RouteSurvey, RouteSurveyForm)
	PathResults  = join(RouteDrawer, RouteHome, RouteTabs, RouteResults, RouteSurveyResults)
	PathNearby   = join(RouteDrawer, RouteHome, RouteTabs, RouteNearby)
	PathProfile  = join(RouteDrawer, RouteProfile, RouteProfileScreen)
	PathSettings = join(RouteDrawer, RouteSettings, RouteSettingsScreen)
)

func join(names ...string) string {
	return strings.Join(names, pathSeparator)
}

// Route is one node of the static screen tree.
type Route struct {
	Name     string
	Kind     Kind
	Children []Route
}

// Params is the parameter set a route starts with.
type Params struct {
	Identity   dm.IdentityContext `json:"identity"`
	TravelType dm.TravelType      `json:"travelType,omitempty"`
	Result     *dm.SurveyResult   `json:"result,omitempty"`
}

// Option adds a task-specific parameter on top of the forwarded identity.
type Option func(*Params)

// WithTravelType carries the category selected in the survey to the nearby
// screen.
func WithTravelType(t dm.TravelType) Option {
	return func(p *Params) {
		p.TravelType = t
	}
}

// WithResult carries a submitted survey to the results screen.
func WithResult(result dm.SurveyResult) Option {
	return func(p *Params) {
		r := result
		p.Result = &r
	}
}

// MountedRoute is a Route together with the params it was registered with.
type MountedRoute struct {
	Name     string         `json:"name"`
	Kind     Kind           `json:"kind"`
	Params   Params         `json:"initialParams"`
	Children []MountedRoute `json:"children,omitempty"`
}

func screen(name string) Route {
	return Route{Name: name, Kind: KindScreen}
}

func stack(name string, children ...Route) Route {
	return Route{Name: name, Kind: KindStack, Children: children}
}

// Tree returns the screen tree. Each call builds a new value.
func Tree() Route {
	tabs := Route{
		Name: RouteTabs,
		Kind: KindTabs,
		Children: []Route{
			stack(RouteSurvey, screen(RouteSurveyForm)),
			stack(RouteResults, screen(RouteSurveyResults)),
			screen(RouteNearby),
		},
	}

	drawer := Route{
		Name: RouteDrawer,
		Kind: KindDrawer,
		Children: []Route{
			stack(RouteHome, screen(RouteHomeScreen), tabs),
			stack(RouteProfile, screen(RouteProfileScreen)),
			stack(RouteSettings, screen(RouteSettingsScreen)),
		},
	}

	return stack(RouteRoot, screen(RouteLogin), drawer)
}

// Mount registers the tree with identity as the initial params of every
// route. Propagation cannot fail.
func Mount(identity dm.IdentityContext) MountedRoute {
	return mount(Tree(), Params{Identity: identity})
}

func mount(r Route, params Params) MountedRoute {
	m := MountedRoute{Name: r.Name, Kind: r.Kind, Params: params}
	if len(r.Children) == 0 {
		return m
	}

	m.Children = make([]MountedRoute, 0, len(r.Children))
	for _, child := range r.Children {
		// children only inherit the identity; task params are per navigation
		m.Children = append(m.Children, mount(child, Params{Identity: params.Identity}))
	}
	return m
}

// Find returns the descendant at path, a slash separated list of route names
// below m.
func (m MountedRoute) Find(path string) (MountedRoute, error) {
	current := m
	for _, name := range strings.Split(strings.Trim(path, pathSeparator), pathSeparator) {
		if name == "" {
			continue
		}
		next, ok := current.child(name)
		if !ok {
			return MountedRoute{}, fmt.Errorf("%w: %s", utils.ErrRouteNotFound, path)
		}
		current = next
	}
	return current, nil
}

func (m MountedRoute) child(name string) (MountedRoute, bool) {
	for _, c := range m.Children {
		if c.Name == name {
			return c, true
		}
	}
	return MountedRoute{}, false
}

// Walk visits m and every descendant depth first, passing each route's path
// relative to m.
func (m MountedRoute) Walk(fn func(path string, r MountedRoute)) {
	m.walk("", fn)
}

func (m MountedRoute) walk(prefix string, fn func(string, MountedRoute)) {
	fn(prefix, m)
	for _, c := range m.Children {
		path := c.Name
		if prefix != "" {
			path = prefix + pathSeparator + c.Name
		}
		c.walk(path, fn)
	}
}

// Navigate mounts the tree for identity, resolves path and applies opts to the
// params of the route found there. The returned route is a copy; the
// identity in it is exactly the one passed in.
func Navigate(identity dm.IdentityContext, path string, opts ...Option) (MountedRoute, error) {
	target, err := Mount(identity).Find(path)
	if err != nil {
		return MountedRoute{}, err
	}

	for _, opt := range opts {
		opt(&target.Params)
	}
	return target, nil
}
