package server

// Server joins the entity-specific HTTP servers under one router.
type Server struct {
	CatalogServer
}

func NewServer(
	catalogServer CatalogServer,
) Server {
	return Server{
		CatalogServer: catalogServer,
	}
}
