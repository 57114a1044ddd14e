//go:build integration

package postgres

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/you-humble/cimco-parts/internal/classifier"
	"github.com/you-humble/cimco-parts/internal/flow"
	"github.com/you-humble/cimco-parts/internal/model"
	"github.com/you-humble/cimco-parts/internal/service/analysis"
	"github.com/you-humble/cimco-parts/internal/service/risk"
	"github.com/you-humble/cimco-parts/internal/service/stock"
)

var _ = Describe("Parts repository", func() {
	var repo *repository

	BeforeEach(func() {
		By("truncating parts table")
		_, err := pool.Exec(ctx, "TRUNCATE TABLE parts RESTART IDENTITY")
		Expect(err).NotTo(HaveOccurred())

		repo = NewPartRepository(pool)
	})

	Context("CreateBatch and List", func() {
		It("round-trips parts including unit cost", func() {
			ids, err := repo.CreateBatch(ctx, []*model.Part{
				{
					Name:         "Motor",
					Description:  "Toshiba 10HP",
					Category:     "Conveyor 1",
					Manufacturer: gofakeit.Company(),
					Quantity:     2,
					UnitCost:     decimal.NewNullDecimal(decimal.RequireFromString("1250.50")),
				},
				{Name: "Belt", Category: "Conveyor 2", Quantity: 1},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(ids).To(HaveLen(2))

			got, err := repo.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(HaveLen(2))

			Expect(got[0].ID).To(Equal(ids[0]))
			Expect(got[0].UnitCost.Valid).To(BeTrue())
			Expect(got[0].UnitCost.Decimal.String()).To(Equal("1250.5"))
			Expect(got[1].UnitCost.Valid).To(BeFalse())
			Expect(got[1].StockKey).To(BeEmpty())
		})
	})

	Context("PartByID", func() {
		It("returns ErrPartNotFound for a missing id", func() {
			_, err := repo.PartByID(ctx, 4242)
			Expect(err).To(MatchError(model.ErrPartNotFound))
		})
	})

	Context("ApplyRiskUpdates", func() {
		It("writes scores and rewrites only tagged descriptions", func() {
			ids, err := repo.CreateBatch(ctx, []*model.Part{
				{Name: "HAMMER", Description: "MAIN HAMMER", Category: "Shredder"},
				{Name: "CHAIN", Description: "Drive chain [Risk:40]", Category: "Conveyor 3"},
			})
			Expect(err).NotTo(HaveOccurred())

			n, err := repo.ApplyRiskUpdates(ctx, []model.RiskUpdate{
				{PartID: ids[0], Score: 144, WearRating: 10, Description: lo.ToPtr("MAIN HAMMER [Risk:144]")},
				{PartID: ids[1], Score: 38, WearRating: 4},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(2))

			hammer, err := repo.PartByID(ctx, ids[0])
			Expect(err).NotTo(HaveOccurred())
			Expect(hammer.Description).To(Equal("MAIN HAMMER [Risk:144]"))
			Expect(*hammer.RiskScore).To(Equal(144))
			Expect(*hammer.WearRating).To(Equal(10))

			chain, err := repo.PartByID(ctx, ids[1])
			Expect(err).NotTo(HaveOccurred())
			Expect(chain.Description).To(Equal("Drive chain [Risk:40]"))
			Expect(*chain.RiskScore).To(Equal(38))
		})
	})

	Context("ApplyStockPlan", func() {
		It("does not duplicate a spare that already exists as a legacy row", func() {
			ids, err := repo.CreateBatch(ctx, []*model.Part{
				{Name: "SEAL", Description: "Shaft seal", Category: "Warehouse Spares", MinQuantity: 1},
			})
			Expect(err).NotTo(HaveOccurred())

			spare := model.SpareSlot{
				StockKey:  "SEAL",
				Installed: 20,
				Part: model.Part{
					Name:        "SEAL",
					Description: "Shaft seal (Support for 20 installed units)",
					Category:    "Warehouse Spares",
					MinQuantity: 4,
					Location:    "Shelf A",
					StockKey:    "SEAL",
				},
			}

			res, err := repo.ApplyStockPlan(ctx, model.StockPlan{
				MinUpdates: []model.MinQuantityUpdate{{PartID: ids[0], StockKey: "SEAL", From: 1, To: 4}},
				Spares:     []model.SpareSlot{spare},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.MinUpdated).To(Equal(1))
			Expect(res.SparesCreated).To(BeZero())

			got, err := repo.PartByID(ctx, ids[0])
			Expect(err).NotTo(HaveOccurred())
			Expect(got.MinQuantity).To(Equal(int64(4)))
		})

		It("finds an existing spare whatever the category casing", func() {
			_, err := repo.CreateBatch(ctx, []*model.Part{
				{Name: "Bearing", Category: "WAREHOUSE SPARES ", Quantity: 2},
			})
			Expect(err).NotTo(HaveOccurred())

			res, err := repo.ApplyStockPlan(ctx, model.StockPlan{
				Spares: []model.SpareSlot{{
					StockKey: "BEARING | 6205 2RS",
					Part: model.Part{
						Name:        "Bearing",
						Category:    "Warehouse Spares",
						MinQuantity: 4,
						Location:    "Shelf A",
						StockKey:    "BEARING | 6205 2RS",
					},
				}},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.SparesCreated).To(BeZero())

			all, err := repo.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(1))
		})

		It("inserts a keyed spare once", func() {
			spare := model.SpareSlot{
				StockKey:  "MOTOR | GENERIC 5HP",
				Installed: 4,
				Part: model.Part{
					Name:        "Motor",
					Description: "Generic 5HP (Support for 4 installed units)",
					Category:    "Warehouse Spares",
					MinQuantity: 1,
					Location:    "Shelf A",
					StockKey:    "MOTOR | GENERIC 5HP",
				},
			}
			plan := model.StockPlan{Spares: []model.SpareSlot{spare}}

			first, err := repo.ApplyStockPlan(ctx, plan)
			Expect(err).NotTo(HaveOccurred())
			Expect(first.SparesCreated).To(Equal(1))

			second, err := repo.ApplyStockPlan(ctx, plan)
			Expect(err).NotTo(HaveOccurred())
			Expect(second.SparesCreated).To(BeZero())

			all, err := repo.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(1))
			Expect(all[0].StockKey).To(Equal("MOTOR | GENERIC 5HP"))
		})
	})

	Context("analysis run", func() {
		It("is idempotent against postgres", func() {
			var parts []*model.Part
			for i := 1; i <= 4; i++ {
				parts = append(parts, &model.Part{
					Name:        "Motor",
					Description: "Generic 5HP",
					Category:    fmt.Sprintf("Conveyor %d", i),
					Quantity:    10,
				})
			}
			parts = append(parts,
				&model.Part{Name: "HAMMER", Description: "MAIN HAMMER", Category: "Shredder", Quantity: 1},
				&model.Part{Name: "HAMMER", Description: "MAIN HAMMER", Category: "Conveyor 1", Quantity: 1},
			)
			_, err := repo.CreateBatch(ctx, parts)
			Expect(err).NotTo(HaveOccurred())

			wear, err := classifier.NewWearClassifier(classifier.DefaultWearTable())
			Expect(err).NotTo(HaveOccurred())

			svc := analysis.NewAnalysisService(
				repo,
				risk.NewScorer(wear, flow.NewWeighter(flow.DefaultConfig()), risk.DefaultConfig()),
				stock.NewAggregator(classifier.DefaultStockClassTable(), stock.DefaultPolicy(), stock.DefaultConfig()),
				nil, nil, nil,
				5*time.Second, 5*time.Second,
			)

			first, err := svc.Run(ctx, model.RunOptions{Trigger: "test"})
			Expect(err).NotTo(HaveOccurred())
			Expect(first.RiskTagged).To(Equal(6))
			Expect(first.SparesCreated).To(Equal(1))

			second, err := svc.Run(ctx, model.RunOptions{Trigger: "test"})
			Expect(err).NotTo(HaveOccurred())
			Expect(second.SparesCreated).To(BeZero())
			Expect(second.MinUpdated).To(BeZero())

			third, err := svc.Run(ctx, model.RunOptions{Trigger: "test"})
			Expect(err).NotTo(HaveOccurred())
			Expect(third.RiskTagged).To(BeZero())

			hammer, err := repo.PartByID(ctx, 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(hammer.Description).To(Equal("MAIN HAMMER [Risk:144]"))
		})
	})
})
