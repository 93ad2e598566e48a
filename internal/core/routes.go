package core

const (
	RoutePrimary     = "/hello/world"
	RouteConstructed = "/hello/constructed"
	RouteStatic      = "/static"
)
