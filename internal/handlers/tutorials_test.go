package handlers_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	v1 "github.com/tutorialhub/tutorials-service/api/v1"
	"github.com/tutorialhub/tutorials-service/internal/config"
	"github.com/tutorialhub/tutorials-service/internal/handlers"
	"github.com/tutorialhub/tutorials-service/internal/server"
	"github.com/tutorialhub/tutorials-service/internal/services"
	"github.com/tutorialhub/tutorials-service/internal/store"
	"github.com/tutorialhub/tutorials-service/internal/store/migrations"
)

var _ = Describe("Tutorial handlers", func() {
	var (
		ctx     context.Context
		db      *sql.DB
		handler http.Handler
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = store.NewDB(ctx, config.Database{
			Driver:         config.DriverSQLite,
			URL:            ":memory:",
			ConnectRetries: 1,
		})
		Expect(err).NotTo(HaveOccurred())

		err = migrations.Run(ctx, db, config.DriverSQLite)
		Expect(err).NotTo(HaveOccurred())

		st := store.NewStore(db, config.DriverSQLite)
		h := handlers.New(services.NewTutorialService(st))

		cfg := config.NewConfigurationWithOptionsAndDefaults(
			config.WithServer(config.Server{ServerMode: config.ServerModeProd, HTTPPort: 0}),
		)
		srv, err := server.NewServer(cfg, db.PingContext, func(router *gin.RouterGroup) {
			handlers.RegisterRoutes(router, h)
		})
		Expect(err).NotTo(HaveOccurred())
		handler = srv.Handler()
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	do := func(method, path string, body any) *httptest.ResponseRecorder {
		var reader *bytes.Reader
		if body != nil {
			raw, err := json.Marshal(body)
			Expect(err).NotTo(HaveOccurred())
			reader = bytes.NewReader(raw)
		} else {
			reader = bytes.NewReader(nil)
		}
		req := httptest.NewRequest(method, path, reader)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w
	}

	decode := func(w *httptest.ResponseRecorder, into any) {
		Expect(json.Unmarshal(w.Body.Bytes(), into)).To(Succeed())
	}

	create := func(title, description string, published bool) v1.Tutorial {
		w := do(http.MethodPost, "/api/tutorials", v1.TutorialRequest{
			Title:       title,
			Description: description,
			Published:   published,
		})
		Expect(w.Code).To(Equal(http.StatusCreated))
		var created v1.Tutorial
		decode(w, &created)
		return created
	}

	Context("POST /api/tutorials", func() {
		// Given a valid payload
		// When we create a tutorial
		// Then the response is 201 with a server-assigned identifier
		It("should create a record and assign the identifier", func() {
			w := do(http.MethodPost, "/api/tutorials", v1.TutorialRequest{
				Title:       "A",
				Description: "B",
				Published:   true,
			})

			Expect(w.Code).To(Equal(http.StatusCreated))
			var created v1.Tutorial
			decode(w, &created)
			Expect(created.Id).NotTo(BeZero())
			Expect(created.Title).To(Equal("A"))
			Expect(created.Description).To(Equal("B"))
			Expect(created.Published).To(BeTrue())
		})

		// Given a payload without the required title
		// When we create a tutorial
		// Then the response is 400
		It("should reject a payload without a title", func() {
			w := do(http.MethodPost, "/api/tutorials", map[string]any{
				"description": "no title here",
			})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		// Given a body that is not JSON
		// When we create a tutorial
		// Then the response is 400
		It("should reject a malformed body", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/tutorials", bytes.NewReader([]byte("{not json")))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("GET /api/tutorials/{id}", func() {
		// Given a created tutorial
		// When we fetch it by the returned identifier
		// Then the same field values come back
		It("should round-trip a created record", func() {
			created := create("A", "B", true)

			w := do(http.MethodGet, fmt.Sprintf("/api/tutorials/%d", created.Id), nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			var fetched v1.Tutorial
			decode(w, &fetched)
			Expect(fetched).To(Equal(created))
		})

		// Given an empty store
		// When we fetch an unknown identifier
		// Then the response is 404, never a server error
		It("should return 404 for an unknown identifier", func() {
			w := do(http.MethodGet, "/api/tutorials/42", nil)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		// Given a non-integer identifier
		// When we fetch it
		// Then the response is 400
		It("should reject a non-integer identifier", func() {
			w := do(http.MethodGet, "/api/tutorials/abc", nil)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("GET /api/tutorials", func() {
		// Given an empty store
		// When we list tutorials
		// Then the response is an empty JSON array
		It("should return an empty array on an empty store", func() {
			w := do(http.MethodGet, "/api/tutorials", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON("[]"))
		})

		// Given several tutorials
		// When we list them
		// Then all records are returned
		It("should list every record", func() {
			create("a", "", false)
			create("b", "", true)

			w := do(http.MethodGet, "/api/tutorials", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			var list []v1.Tutorial
			decode(w, &list)
			Expect(list).To(HaveLen(2))
		})
	})

	Context("GET /api/tutorials/published", func() {
		// Given a mix of published and unpublished tutorials
		// When we list the published ones
		// Then exactly the subset with published=true is returned
		It("should return only published records", func() {
			create("draft", "", false)
			published := create("live", "", true)

			w := do(http.MethodGet, "/api/tutorials/published", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			var list []v1.Tutorial
			decode(w, &list)
			Expect(list).To(HaveLen(1))
			Expect(list[0].Id).To(Equal(published.Id))
		})
	})

	Context("PUT /api/tutorials/{id}", func() {
		// Given a created tutorial
		// When we replace its fields
		// Then only the submitted fields change and the identifier is stable
		It("should update a record in place", func() {
			created := create("old", "old desc", false)

			w := do(http.MethodPut, fmt.Sprintf("/api/tutorials/%d", created.Id), v1.TutorialRequest{
				Title:       "new",
				Description: "new desc",
				Published:   true,
			})

			Expect(w.Code).To(Equal(http.StatusOK))
			var updated v1.Tutorial
			decode(w, &updated)
			Expect(updated.Id).To(Equal(created.Id))
			Expect(updated.Title).To(Equal("new"))
			Expect(updated.Description).To(Equal("new desc"))
			Expect(updated.Published).To(BeTrue())
		})

		// Given an empty store
		// When we update an unknown identifier
		// Then the response is 404
		It("should return 404 for an unknown identifier", func() {
			w := do(http.MethodPut, "/api/tutorials/42", v1.TutorialRequest{Title: "x"})

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("DELETE /api/tutorials/{id}", func() {
		// Given a created tutorial
		// When we delete it and fetch it again
		// Then the delete is 204 and the fetch is 404
		It("should delete a record", func() {
			created := create("doomed", "", false)

			w := do(http.MethodDelete, fmt.Sprintf("/api/tutorials/%d", created.Id), nil)
			Expect(w.Code).To(Equal(http.StatusNoContent))

			w = do(http.MethodGet, fmt.Sprintf("/api/tutorials/%d", created.Id), nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		// Given an empty store
		// When we delete an unknown identifier
		// Then the response is 404
		It("should return 404 for an unknown identifier", func() {
			w := do(http.MethodDelete, "/api/tutorials/42", nil)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("DELETE /api/tutorials", func() {
		// Given several tutorials
		// When we delete all of them and list again
		// Then the response is 204 and the list is empty
		It("should empty the collection", func() {
			create("a", "", false)
			create("b", "", true)

			w := do(http.MethodDelete, "/api/tutorials", nil)
			Expect(w.Code).To(Equal(http.StatusNoContent))

			w = do(http.MethodGet, "/api/tutorials", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON("[]"))
		})
	})

	Context("GET /actuator/health", func() {
		// Given a reachable database
		// When we probe the health endpoint
		// Then the status is UP
		It("should report UP while the database responds", func() {
			w := do(http.MethodGet, "/actuator/health", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`{"status":"UP"}`))
		})

		// Given a closed database
		// When we probe the health endpoint
		// Then the status is DOWN with 503
		It("should report DOWN when the database is gone", func() {
			Expect(db.Close()).To(Succeed())

			w := do(http.MethodGet, "/actuator/health", nil)

			Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
			Expect(w.Body.String()).To(MatchJSON(`{"status":"DOWN"}`))
		})
	})

	Context("full lifecycle", func() {
		// Given a fresh record
		// When we create, fetch, delete, and fetch again
		// Then the status codes are 201, 200, 204, 404 in that order
		It("should walk create, fetch, delete, not-found", func() {
			created := create("A", "B", true)

			w := do(http.MethodGet, fmt.Sprintf("/api/tutorials/%d", created.Id), nil)
			Expect(w.Code).To(Equal(http.StatusOK))

			w = do(http.MethodDelete, fmt.Sprintf("/api/tutorials/%d", created.Id), nil)
			Expect(w.Code).To(Equal(http.StatusNoContent))

			w = do(http.MethodGet, fmt.Sprintf("/api/tutorials/%d", created.Id), nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})
})
