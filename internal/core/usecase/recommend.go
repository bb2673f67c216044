package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/TomMcLan/luggage-packing-app/internal/core/catalog"
	"github.com/TomMcLan/luggage-packing-app/internal/core/domain"
	"github.com/TomMcLan/luggage-packing-app/internal/core/ports"
)

// Scoring weights: category compatibility dominates, efficiency and ease of
// execution break ties.
const (
	categoryWeight   = 0.7
	efficiencyWeight = 0.2
	difficultyWeight = 0.1

	topMethods = 4
)

// luggageVolumeLiters is the recommendation path's coarse size table.
// Intentionally separate from the container catalog's internal volumes:
// these are the marketing-rated totals the space-used percentages were
// calibrated against.
var luggageVolumeLiters = map[string]float64{
	"underseat": 22,
	"carryon":   45,
	"medium":    65,
	"large":     85,
}

const defaultLuggageVolumeLiters = 45

// itemSpaceLiters estimates per-item liters by category and coarse size.
var itemSpaceLiters = map[domain.Category]map[domain.EstimatedSize]float64{
	domain.CategoryClothing:    {domain.SizeSmall: 1, domain.SizeMedium: 2, domain.SizeLarge: 4},
	domain.CategoryElectronics: {domain.SizeSmall: 0.5, domain.SizeMedium: 1.5, domain.SizeLarge: 3},
	domain.CategoryToiletries:  {domain.SizeSmall: 0.3, domain.SizeMedium: 0.8, domain.SizeLarge: 1.5},
	domain.CategoryShoes:       {domain.SizeSmall: 3, domain.SizeMedium: 4, domain.SizeLarge: 5},
	domain.CategoryAccessories: {domain.SizeSmall: 0.2, domain.SizeMedium: 0.5, domain.SizeLarge: 1},
	domain.CategoryBooks:       {domain.SizeSmall: 0.5, domain.SizeMedium: 1, domain.SizeLarge: 2},
	domain.CategoryDocuments:   {domain.SizeSmall: 0.1, domain.SizeMedium: 0.2, domain.SizeLarge: 0.5},
}

type RecommendMethodsUseCase struct {
	methods  *catalog.MethodCatalog
	sessions ports.SessionRepository
}

func NewRecommendMethodsUseCase(methods *catalog.MethodCatalog, sessions ports.SessionRepository) *RecommendMethodsUseCase {
	return &RecommendMethodsUseCase{
		methods:  methods,
		sessions: sessions,
	}
}

// Recommend ranks the packing-method catalog against the submitted items and
// returns the top four, each annotated with the items it applies to and an
// estimated share of the luggage it would use. Scoring is best-effort: it
// never surfaces a computation failure to the caller.
func (uc *RecommendMethodsUseCase) Recommend(
	ctx context.Context,
	items []domain.RecommendationItem,
	luggageSize string,
	sessionID string,
) (*domain.RecommendationResult, string, error) {
	if len(items) == 0 {
		return nil, "", domain.WrapError(domain.ErrInvalidInput, "recommend methods", errors.New("items list is empty"))
	}
	for _, item := range items {
		if item.Name == "" || item.Category == "" {
			return nil, "", domain.WrapError(
				domain.ErrInvalidInput,
				"recommend methods",
				errors.New("each item must have a name and category"),
			)
		}
	}

	normalized := normalizeRecommendationItems(items)
	histogram := categoryHistogram(normalized)

	scored := make([]domain.RecommendedMethod, 0, len(uc.methods.All()))
	for _, method := range uc.methods.All() {
		scored = append(scored, domain.RecommendedMethod{
			PackingMethod:      method,
			Score:              scoreMethod(method, histogram),
			ApplicableItems:    applicableItems(method, normalized),
			EstimatedSpaceUsed: estimateSpaceUsed(normalized, method, luggageSize),
		})
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if len(scored) > topMethods {
		scored = scored[:topMethods]
	}

	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	if err := uc.sessions.Save(ctx, domain.Session{
		SessionID:      sessionID,
		LuggageSize:    luggageSize,
		ConfirmedItems: normalized,
		CreatedAt:      time.Now().UTC(),
	}); err != nil {
		// Session storage is best-effort; the recommendation still stands.
		slog.Error("save session", "session_id", sessionID, "error", err)
	}

	return &domain.RecommendationResult{
		RecommendedMethods: scored,
		TotalItems:         len(items),
	}, sessionID, nil
}

func normalizeRecommendationItems(items []domain.RecommendationItem) []domain.RecommendationItem {
	out := make([]domain.RecommendationItem, len(items))
	for i, item := range items {
		out[i] = domain.RecommendationItem{
			Name:          item.Name,
			Category:      domain.ParseCategory(string(item.Category)),
			EstimatedSize: domain.ParseEstimatedSize(string(item.EstimatedSize)),
			Quantity:      item.Quantity,
		}
		if out[i].Quantity < 1 {
			out[i].Quantity = 1
		}
	}
	return out
}

func categoryHistogram(items []domain.RecommendationItem) map[domain.Category]int {
	histogram := make(map[domain.Category]int)
	for _, item := range items {
		histogram[item.Category]++
	}
	return histogram
}

func scoreMethod(method domain.PackingMethod, histogram map[domain.Category]int) float64 {
	score := 0.0
	for _, category := range method.BestForCategories {
		score += float64(histogram[category]) * categoryWeight
	}
	score += method.EfficiencyRating * efficiencyWeight
	score += method.Difficulty.Score() * difficultyWeight
	return score
}

func applicableItems(method domain.PackingMethod, items []domain.RecommendationItem) []string {
	names := []string{}
	for _, item := range items {
		if method.SuitsCategory(item.Category) {
			names = append(names, item.Name)
		}
	}
	return names
}

// estimateSpaceUsed reports the luggage share a method would use, as "NN%".
// The result is clamped to [20, 95]: the UI never claims emptier than 20%
// or fuller than 95%. Any internal failure yields the "50%" fallback rather
// than an error.
func estimateSpaceUsed(items []domain.RecommendationItem, method domain.PackingMethod, luggageSize string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("space usage estimate failed", "method", method.Name, "cause", r)
			result = "50%"
		}
	}()

	luggageVolume, ok := luggageVolumeLiters[luggageSize]
	if !ok {
		luggageVolume = defaultLuggageVolumeLiters
	}

	totalLiters := 0.0
	for _, item := range items {
		categorySpace, ok := itemSpaceLiters[item.Category]
		if !ok {
			categorySpace = itemSpaceLiters[domain.CategoryClothing]
		}
		space, ok := categorySpace[item.EstimatedSize]
		if !ok {
			space = categorySpace[domain.SizeMedium]
		}
		totalLiters += space * float64(item.Quantity)
	}

	optimized := totalLiters * (1 - method.SpaceSavingsPercent/100)
	percent := optimized / luggageVolume * 100
	clamped := math.Min(95, math.Max(20, math.Round(percent)))
	return fmt.Sprintf("%d%%", int(clamped))
}
