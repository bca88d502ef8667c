package store_test

import (
	"context"
	"database/sql"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tutorialhub/tutorials-service/internal/config"
	"github.com/tutorialhub/tutorials-service/internal/models"
	"github.com/tutorialhub/tutorials-service/internal/store"
	"github.com/tutorialhub/tutorials-service/internal/store/migrations"
	srvErrors "github.com/tutorialhub/tutorials-service/pkg/errors"
)

var _ = Describe("TutorialStore", func() {
	var (
		ctx context.Context
		s   *store.Store
		db  *sql.DB
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

		s = store.NewStore(db, config.DriverSQLite)
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	Context("Create", func() {
		// Given an empty store
		// When we create a tutorial
		// Then it gets a database-assigned identifier and keeps its fields
		It("should assign an identifier and persist all fields", func() {
			// Act
			created, err := s.Tutorials().Create(ctx, models.Tutorial{
				Title:       "A",
				Description: "B",
				Published:   true,
			})

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).NotTo(BeZero())

			fetched, err := s.Tutorials().Get(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched.Title).To(Equal("A"))
			Expect(fetched.Description).To(Equal("B"))
			Expect(fetched.Published).To(BeTrue())
		})

		// Given two created tutorials
		// When we inspect their identifiers
		// Then they are distinct
		It("should assign unique identifiers", func() {
			first, err := s.Tutorials().Create(ctx, models.Tutorial{Title: "first"})
			Expect(err).NotTo(HaveOccurred())

			second, err := s.Tutorials().Create(ctx, models.Tutorial{Title: "second"})
			Expect(err).NotTo(HaveOccurred())

			Expect(second.ID).NotTo(Equal(first.ID))
		})
	})

	Context("Get", func() {
		// Given an empty store
		// When we fetch an unknown identifier
		// Then it reports a ResourceNotFoundError
		It("should return not-found for an unknown identifier", func() {
			_, err := s.Tutorials().Get(ctx, 42)

			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})

	Context("List", func() {
		// Given a mix of published and unpublished tutorials
		// When we list with the published filter
		// Then exactly the published subset is returned
		It("should filter by the published flag", func() {
			// Arrange
			published, err := s.Tutorials().Create(ctx, models.Tutorial{Title: "pub", Published: true})
			Expect(err).NotTo(HaveOccurred())
			_, err = s.Tutorials().Create(ctx, models.Tutorial{Title: "draft", Published: false})
			Expect(err).NotTo(HaveOccurred())

			// Act
			tutorials, err := s.Tutorials().List(ctx, store.ByPublished(true))

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(tutorials).To(HaveLen(1))
			Expect(tutorials[0].ID).To(Equal(published.ID))
			Expect(tutorials[0].Published).To(BeTrue())
		})

		// Given an empty store
		// When we list without filters
		// Then the result is empty
		It("should return an empty result on an empty store", func() {
			tutorials, err := s.Tutorials().List(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(tutorials).To(BeEmpty())
		})

		// Given several tutorials
		// When we list without filters
		// Then all of them are returned
		It("should list every record", func() {
			for _, title := range []string{"a", "b", "c"} {
				_, err := s.Tutorials().Create(ctx, models.Tutorial{Title: title})
				Expect(err).NotTo(HaveOccurred())
			}

			tutorials, err := s.Tutorials().List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(tutorials).To(HaveLen(3))
		})
	})

	Context("Update", func() {
		// Given an existing tutorial
		// When we update its fields
		// Then the submitted fields change and the identifier does not
		It("should replace mutable fields and keep the identifier", func() {
			// Arrange
			created, err := s.Tutorials().Create(ctx, models.Tutorial{
				Title:       "old title",
				Description: "old description",
				Published:   false,
			})
			Expect(err).NotTo(HaveOccurred())

			// Act
			updated, err := s.Tutorials().Update(ctx, models.Tutorial{
				ID:          created.ID,
				Title:       "new title",
				Description: "new description",
				Published:   true,
			})

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.ID).To(Equal(created.ID))
			Expect(updated.Title).To(Equal("new title"))
			Expect(updated.Description).To(Equal("new description"))
			Expect(updated.Published).To(BeTrue())
		})

		// Given an empty store
		// When we update an unknown identifier
		// Then it reports a ResourceNotFoundError
		It("should return not-found for an unknown identifier", func() {
			_, err := s.Tutorials().Update(ctx, models.Tutorial{ID: 42, Title: "x"})

			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})

	Context("Delete", func() {
		// Given an existing tutorial
		// When we delete it
		// Then fetching it afterwards reports not-found
		It("should remove the record", func() {
			created, err := s.Tutorials().Create(ctx, models.Tutorial{Title: "doomed"})
			Expect(err).NotTo(HaveOccurred())

			Expect(s.Tutorials().Delete(ctx, created.ID)).To(Succeed())

			_, err = s.Tutorials().Get(ctx, created.ID)
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		// Given an empty store
		// When we delete an unknown identifier
		// Then it reports a ResourceNotFoundError
		It("should return not-found for an unknown identifier", func() {
			err := s.Tutorials().Delete(ctx, 42)

			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})

	Context("DeleteAll", func() {
		// Given several tutorials
		// When we delete all of them
		// Then a subsequent list is empty
		It("should leave the store empty", func() {
			for _, title := range []string{"a", "b"} {
				_, err := s.Tutorials().Create(ctx, models.Tutorial{Title: title})
				Expect(err).NotTo(HaveOccurred())
			}

			Expect(s.Tutorials().DeleteAll(ctx)).To(Succeed())

			tutorials, err := s.Tutorials().List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(tutorials).To(BeEmpty())
		})

		// Given an empty store
		// When we delete all records
		// Then it succeeds without error
		It("should succeed on an empty store", func() {
			Expect(s.Tutorials().DeleteAll(ctx)).To(Succeed())
		})
	})
})
