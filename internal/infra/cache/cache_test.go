package cache_test

import (
	"context"
	"errors"
	"time"

	"forms-server/internal/infra/cache"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Cache", func() {
	var (
		cacheInstance cache.Cache
		ctx           context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		cacheInstance, err = cache.New(nil)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		ctx = context.Background()
	})

	ginkgo.Context("Set and Get", func() {
		ginkgo.When("setting and getting a value", func() {
			ginkgo.It("should store and retrieve the value correctly", func() {
				success := cacheInstance.Set(ctx, "owner:1", "client-a", time.Minute)
				gomega.Expect(success).To(gomega.BeTrue())

				// Small delay for Ristretto to process the value
				time.Sleep(10 * time.Millisecond)

				retrieved, found := cacheInstance.Get(ctx, "owner:1")
				gomega.Expect(found).To(gomega.BeTrue())
				gomega.Expect(retrieved).To(gomega.Equal("client-a"))
			})
		})

		ginkgo.When("getting a missing key", func() {
			ginkgo.It("should report a miss", func() {
				_, found := cacheInstance.Get(ctx, "missing")
				gomega.Expect(found).To(gomega.BeFalse())
			})
		})

		ginkgo.When("the value has a short TTL", func() {
			ginkgo.It("should expire the value after TTL", func() {
				success := cacheInstance.Set(ctx, "fleeting", "value", 50*time.Millisecond)
				gomega.Expect(success).To(gomega.BeTrue())

				time.Sleep(150 * time.Millisecond)

				_, found := cacheInstance.Get(ctx, "fleeting")
				gomega.Expect(found).To(gomega.BeFalse())
			})
		})
	})

	ginkgo.Context("Delete", func() {
		ginkgo.It("should remove the value", func() {
			cacheInstance.Set(ctx, "owner:1", "client-a", time.Minute)
			time.Sleep(10 * time.Millisecond)

			cacheInstance.Delete(ctx, "owner:1")
			time.Sleep(10 * time.Millisecond)

			_, found := cacheInstance.Get(ctx, "owner:1")
			gomega.Expect(found).To(gomega.BeFalse())
		})
	})

	ginkgo.Context("GetOrSet", func() {
		ginkgo.When("the key is absent", func() {
			ginkgo.It("should load and cache the value", func() {
				loads := 0
				loader := func() (any, error) {
					loads++
					return "client-a", nil
				}

				value, err := cacheInstance.GetOrSet(ctx, "owner:1", time.Minute, loader)
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(value).To(gomega.Equal("client-a"))
				gomega.Expect(loads).To(gomega.Equal(1))

				time.Sleep(10 * time.Millisecond)

				value, err = cacheInstance.GetOrSet(ctx, "owner:1", time.Minute, loader)
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(value).To(gomega.Equal("client-a"))
				gomega.Expect(loads).To(gomega.Equal(1))
			})
		})

		ginkgo.When("the loader fails", func() {
			ginkgo.It("should propagate the error and cache nothing", func() {
				loaderErr := errors.New("lookup failed")
				_, err := cacheInstance.GetOrSet(ctx, "owner:2", time.Minute, func() (any, error) {
					return nil, loaderErr
				})
				gomega.Expect(err).To(gomega.MatchError(loaderErr))

				_, found := cacheInstance.Get(ctx, "owner:2")
				gomega.Expect(found).To(gomega.BeFalse())
			})
		})
	})
})
