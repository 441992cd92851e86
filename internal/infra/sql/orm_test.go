package sql_test

import (
	"context"

	"forms-server/internal/infra/sql"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

type testRecord struct {
	ID   string `gorm:"primaryKey"`
	Name string
}

var _ = ginkgo.Describe("ORM", func() {
	var (
		orm sql.ORM
		ctx context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		orm, err = sql.NewIsolatedMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(orm.AutoMigrate(&testRecord{})).To(gomega.Succeed())
		ctx = context.Background()
	})

	ginkgo.Context("basic operations", func() {
		ginkgo.It("creates and finds records", func() {
			err := orm.WithContext(ctx).Create(&testRecord{ID: "1", Name: "first"}).Error()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			var found testRecord
			err = orm.WithContext(ctx).First(&found, "id = ?", "1").Error()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(found.Name).To(gomega.Equal("first"))
		})

		ginkgo.It("translates a missing record into ErrRecordNotFound", func() {
			var found testRecord
			err := orm.WithContext(ctx).First(&found, "id = ?", "missing").Error()
			gomega.Expect(err).To(gomega.MatchError(sql.ErrRecordNotFound))
		})

		ginkgo.It("reports affected rows on delete", func() {
			err := orm.WithContext(ctx).Create(&testRecord{ID: "1", Name: "first"}).Error()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			result := orm.WithContext(ctx).Delete(&testRecord{}, "id = ?", "1")
			gomega.Expect(result.Error()).NotTo(gomega.HaveOccurred())
			gomega.Expect(result.RowsAffected()).To(gomega.Equal(int64(1)))

			result = orm.WithContext(ctx).Delete(&testRecord{}, "id = ?", "1")
			gomega.Expect(result.Error()).NotTo(gomega.HaveOccurred())
			gomega.Expect(result.RowsAffected()).To(gomega.Equal(int64(0)))
		})
	})

	ginkgo.Context("Updates", func() {
		ginkgo.It("rewrites matched rows and reports the count", func() {
			err := orm.WithContext(ctx).Create(&testRecord{ID: "1", Name: "first"}).Error()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			result := orm.WithContext(ctx).
				Model(&testRecord{}).
				Where("id = ?", "1").
				Updates(testRecord{ID: "1", Name: "renamed"})
			gomega.Expect(result.Error()).NotTo(gomega.HaveOccurred())
			gomega.Expect(result.RowsAffected()).To(gomega.Equal(int64(1)))

			var found testRecord
			err = orm.WithContext(ctx).First(&found, "id = ?", "1").Error()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(found.Name).To(gomega.Equal("renamed"))
		})

		ginkgo.It("affects no rows and inserts nothing when no row matches", func() {
			result := orm.WithContext(ctx).
				Model(&testRecord{}).
				Where("id = ?", "missing").
				Updates(testRecord{ID: "missing", Name: "ghost"})
			gomega.Expect(result.Error()).NotTo(gomega.HaveOccurred())
			gomega.Expect(result.RowsAffected()).To(gomega.Equal(int64(0)))

			var found testRecord
			err := orm.WithContext(ctx).First(&found, "id = ?", "missing").Error()
			gomega.Expect(err).To(gomega.MatchError(sql.ErrRecordNotFound))
		})
	})

	ginkgo.Context("Transaction", func() {
		ginkgo.It("commits when the callback succeeds", func() {
			err := orm.Transaction(func(tx sql.ORM) error {
				return tx.WithContext(ctx).Create(&testRecord{ID: "1", Name: "committed"}).Error()
			})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			var found testRecord
			err = orm.WithContext(ctx).First(&found, "id = ?", "1").Error()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		})

		ginkgo.It("rolls back when the callback fails", func() {
			err := orm.Transaction(func(tx sql.ORM) error {
				if err := tx.WithContext(ctx).Create(&testRecord{ID: "1", Name: "doomed"}).Error(); err != nil {
					return err
				}
				return context.Canceled
			})
			gomega.Expect(err).To(gomega.HaveOccurred())

			var found testRecord
			err = orm.WithContext(ctx).First(&found, "id = ?", "1").Error()
			gomega.Expect(err).To(gomega.MatchError(sql.ErrRecordNotFound))
		})
	})
})
