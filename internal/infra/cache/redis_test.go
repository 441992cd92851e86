package cache_test

import (
	"context"
	"time"

	"forms-server/internal/infra/cache"
	mockcache "forms-server/test/unit/doubles/infra/cache"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"
	"go.uber.org/mock/gomock"
)

var _ = ginkgo.Describe("RedisCache", func() {
	var (
		redisCache      *cache.RedisCache
		mockCacheClient *mockcache.MockCacheClient
		ctrl            *gomock.Controller
		ctx             context.Context
	)

	ginkgo.BeforeEach(func() {
		ctrl = gomock.NewController(ginkgo.GinkgoT())
		mockCacheClient = mockcache.NewMockCacheClient(ctrl)
		redisCache = cache.NewRedisCacheWithClient(mockCacheClient, nil)
		ctx = context.Background()
	})

	ginkgo.AfterEach(func() {
		ctrl.Finish()
	})

	ginkgo.Context("Get", func() {
		ginkgo.When("the value exists", func() {
			ginkgo.It("should decode the stored JSON", func() {
				cmd := redis.NewStringCmd(ctx, "get", "owner:1")
				cmd.SetVal(`"client-a"`)
				mockCacheClient.EXPECT().Get(gomock.Any(), "owner:1").Return(cmd)

				value, found := redisCache.Get(ctx, "owner:1")
				gomega.Expect(found).To(gomega.BeTrue())
				gomega.Expect(value).To(gomega.Equal("client-a"))
			})
		})

		ginkgo.When("the key is absent", func() {
			ginkgo.It("should report a miss", func() {
				cmd := redis.NewStringCmd(ctx, "get", "missing")
				cmd.SetErr(redis.Nil)
				mockCacheClient.EXPECT().Get(gomock.Any(), "missing").Return(cmd)

				_, found := redisCache.Get(ctx, "missing")
				gomega.Expect(found).To(gomega.BeFalse())
			})
		})
	})

	ginkgo.Context("Set", func() {
		ginkgo.It("should store the JSON-encoded value with the TTL", func() {
			mockCacheClient.EXPECT().
				Set(gomock.Any(), "owner:1", []byte(`"client-a"`), time.Hour).
				Return(redis.NewStatusCmd(ctx, "OK"))

			success := redisCache.Set(ctx, "owner:1", "client-a", time.Hour)
			gomega.Expect(success).To(gomega.BeTrue())
		})
	})

	ginkgo.Context("Delete", func() {
		ginkgo.It("should remove the key", func() {
			mockCacheClient.EXPECT().
				Del(gomock.Any(), "owner:1").
				Return(redis.NewIntCmd(ctx, 1))

			redisCache.Delete(ctx, "owner:1")
		})
	})

	ginkgo.Context("GetOrSet", func() {
		ginkgo.When("the key is absent", func() {
			ginkgo.It("should load, store and return the value", func() {
				miss := redis.NewStringCmd(ctx, "get", "owner:1")
				miss.SetErr(redis.Nil)
				mockCacheClient.EXPECT().Get(gomock.Any(), "owner:1").Return(miss).Times(2)
				mockCacheClient.EXPECT().
					Set(gomock.Any(), "owner:1", []byte(`"client-a"`), time.Hour).
					Return(redis.NewStatusCmd(ctx, "OK"))

				value, err := redisCache.GetOrSet(ctx, "owner:1", time.Hour, func() (any, error) {
					return "client-a", nil
				})
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(value).To(gomega.Equal("client-a"))
			})
		})

		ginkgo.When("the value is already cached", func() {
			ginkgo.It("should not invoke the loader", func() {
				cmd := redis.NewStringCmd(ctx, "get", "owner:1")
				cmd.SetVal(`"client-a"`)
				mockCacheClient.EXPECT().Get(gomock.Any(), "owner:1").Return(cmd)

				value, err := redisCache.GetOrSet(ctx, "owner:1", time.Hour, func() (any, error) {
					ginkgo.Fail("loader must not be called on a hit")
					return nil, nil
				})
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(value).To(gomega.Equal("client-a"))
			})
		})
	})
})
