package api

import "github.com/gin-gonic/gin"

// SetupRouter configures and returns the gin engine. /bills is a full
// alias of /documents for callers using the legacy paths.
func SetupRouter(h *Handler) *gin.Engine {
	r := gin.Default()
	r.Use(TraceMiddleware())

	apiV1 := r.Group("/api/v1")
	{
		apiV1.GET("/ping", h.Ping)
		apiV1.GET("/stats", h.GetStats)

		congresses := apiV1.Group("/congresses")
		{
			congresses.GET("", h.ListCongresses)
			congresses.GET("/:id", h.GetCongress)
			congresses.GET("/:id/documents", h.ListCongressDocuments)
			congresses.GET("/:id/bills", h.ListCongressDocuments)
			congresses.GET("/:id/committees", h.ListCongressCommittees)
			congresses.GET("/:id/senators", h.ListCongressSenators)
			congresses.GET("/:id/representatives", h.ListCongressRepresentatives)
		}

		people := apiV1.Group("/people")
		{
			people.GET("", h.ListPeople)
			people.GET("/:id", h.GetPerson)
			people.GET("/:id/congresses", h.GetPersonCongresses)
			people.GET("/:id/documents", h.ListPersonDocuments)
			people.GET("/:id/bills", h.ListPersonDocuments)
		}

		for _, prefix := range []string{"/documents", "/bills"} {
			docs := apiV1.Group(prefix)
			docs.GET("", h.ListDocuments)
			docs.GET("/:id", h.GetDocument)
			docs.GET("/:id/authors", h.GetDocumentAuthors)
		}

		search := apiV1.Group("/search")
		{
			search.GET("/people", h.SearchPeople)
			search.GET("/documents", h.SearchDocuments)
			search.GET("/bills", h.SearchDocuments)
		}
	}

	return r
}
