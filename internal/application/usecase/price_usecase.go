package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/Precios-api/internal/application/dto"
	"github.com/jhoicas/Precios-api/internal/domain/entity"
	"github.com/jhoicas/Precios-api/internal/domain/pricing"
	"github.com/jhoicas/Precios-api/internal/domain/repository"
	"github.com/jhoicas/Precios-api/pkg/logger"
	"github.com/jhoicas/Precios-api/pkg/metrics"
)

// PriceUseCase resuelve precios por organización compradora. Por lote hace
// tres cargas masivas (reglas de la org, productos pedidos, tabla de
// categorías) en paralelo y después calcula todo en memoria; la resolución
// por producto se reparte entre workers sin coordinación porque el árbol y
// el índice son de solo lectura.
type PriceUseCase struct {
	rules      repository.PriceRuleRepository
	products   repository.ProductRepository
	categories repository.CategoryRepository
	log        *logger.Logger
	workers    int
}

// NewPriceUseCase construye el caso de uso. workers <= 0 usa el valor por defecto.
func NewPriceUseCase(
	rules repository.PriceRuleRepository,
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	log *logger.Logger,
	workers int,
) *PriceUseCase {
	if workers <= 0 {
		workers = 4
	}
	return &PriceUseCase{
		rules:      rules,
		products:   products,
		categories: categories,
		log:        log,
		workers:    workers,
	}
}

// Lookup resuelve el precio efectivo de cada producto pedido para la
// organización. Lista vacía de IDs no es error: devuelve lista vacía.
// El orden del resultado refleja el orden de los IDs pedidos; los IDs que
// no existen en el catálogo se excluyen (con log y métrica). Cualquier
// fallo de carga es fatal para el lote completo: nunca hay resultado parcial.
func (uc *PriceUseCase) Lookup(ctx context.Context, orgID int64, productIDs []int64) ([]dto.ResolvedPriceResponse, error) {
	results := []dto.ResolvedPriceResponse{}
	if len(productIDs) == 0 {
		return results, nil
	}

	metrics.PriceLookupsTotal.Inc()
	start := time.Now()
	defer func() { metrics.ResolveDuration.Observe(time.Since(start).Seconds()) }()

	rules, products, categories, err := uc.loadBatch(ctx, orgID, productIDs)
	if err != nil {
		uc.log.Error().Err(err).Int64("org_id", orgID).Msg("carga del lote de precios")
		return nil, err
	}

	tree := pricing.NewCategoryTree(categories)
	index := pricing.NewRuleIndex(rules)
	resolver := pricing.NewResolver(tree, index)

	byID := make(map[int64]entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	// El orden de salida refleja el de los IDs pedidos; los no encontrados
	// se excluyen pero dejan señal.
	batch := make([]entity.Product, 0, len(productIDs))
	missing := 0
	for _, id := range productIDs {
		p, ok := byID[id]
		if !ok {
			missing++
			uc.log.Warn().Int64("org_id", orgID).Int64("product_id", id).
				Msg("producto solicitado no existe en el catálogo")
			continue
		}
		batch = append(batch, p)
	}
	if missing > 0 {
		metrics.MissingProductsTotal.Add(float64(missing))
	}

	resolved := uc.resolveParallel(resolver, batch)
	for i, r := range resolved {
		metrics.PriceRuleMatchesTotal.WithLabelValues(matchScope(index, batch[i].ID, r)).Inc()
		results = append(results, dto.ToResolvedPriceResponse(r))
	}
	return results, nil
}

// ListRules devuelve todas las reglas de precio de la organización,
// ordenadas por product_id, lifecycle_id y category_id.
func (uc *PriceUseCase) ListRules(ctx context.Context, orgID int64) (*dto.PriceRuleListResponse, error) {
	rules, err := uc.rules.ListByOrg(ctx, orgID)
	if err != nil {
		uc.log.Error().Err(err).Int64("org_id", orgID).Msg("listar reglas de precio")
		return nil, fmt.Errorf("listar reglas de la org %d: %w", orgID, err)
	}
	items := make([]dto.PriceRuleResponse, 0, len(rules))
	for _, r := range rules {
		items = append(items, dto.ToPriceRuleResponse(r))
	}
	return &dto.PriceRuleListResponse{Items: items, Total: len(items)}, nil
}

// loadBatch ejecuta las tres cargas masivas en paralelo. Son lecturas
// independientes; el primer error cancela las demás y aborta el lote.
func (uc *PriceUseCase) loadBatch(ctx context.Context, orgID int64, productIDs []int64) (
	[]entity.PriceRule, []entity.Product, []entity.Category, error,
) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	var rules []entity.PriceRule
	var products []entity.Product
	var categories []entity.Category
	var errRules, errProducts, errCategories error

	wg.Add(3)
	go func() {
		defer wg.Done()
		if rules, errRules = uc.rules.FilterByOrg(ctx, orgID); errRules != nil {
			cancel()
		}
	}()
	go func() {
		defer wg.Done()
		if products, errProducts = uc.products.QueryByIDs(ctx, productIDs); errProducts != nil {
			cancel()
		}
	}()
	go func() {
		defer wg.Done()
		if categories, errCategories = uc.categories.List(ctx); errCategories != nil {
			cancel()
		}
	}()
	wg.Wait()

	if errRules != nil {
		return nil, nil, nil, fmt.Errorf("cargar reglas de la org %d: %w", orgID, errRules)
	}
	if errProducts != nil {
		return nil, nil, nil, fmt.Errorf("cargar productos: %w", errProducts)
	}
	if errCategories != nil {
		return nil, nil, nil, fmt.Errorf("cargar categorías: %w", errCategories)
	}
	return rules, products, categories, nil
}

// resolveParallel reparte la resolución entre workers. Cada producto escribe
// en su propia posición del slice, así el orden del lote se conserva.
func (uc *PriceUseCase) resolveParallel(resolver *pricing.Resolver, batch []entity.Product) []entity.ResolvedPrice {
	resolved := make([]entity.ResolvedPrice, len(batch))
	if len(batch) == 0 {
		return resolved
	}

	workers := uc.workers
	if workers > len(batch) {
		workers = len(batch)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				resolved[i] = resolver.Resolve(batch[i])
			}
		}()
	}
	for i := range batch {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return resolved
}

// matchScope clasifica la resolución para métricas.
func matchScope(index *pricing.RuleIndex, productID int64, r entity.ResolvedPrice) string {
	switch {
	case r.PriceRuleID == 0:
		return "none"
	case index.ByProduct(productID) != nil:
		return "product"
	default:
		return "category"
	}
}
