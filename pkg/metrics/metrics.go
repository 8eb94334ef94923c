package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const prefix = "precios"

// Métricas Prometheus del servicio. Se registran en el registry por defecto
// al cargar el paquete; el endpoint /metrics las expone.
var (
	// HTTPRequestsTotal peticiones HTTP por método, ruta y estado.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total de peticiones HTTP",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration duración de peticiones HTTP en segundos.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duración de las peticiones HTTP en segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// PriceLookupsTotal lotes de resolución de precios procesados.
	PriceLookupsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_price_lookups_total",
			Help: "Total de lotes de resolución de precios",
		},
	)

	// PriceRuleMatchesTotal resoluciones por tipo de coincidencia:
	// product (regla por producto), category (regla por categoría),
	// none (precio de lista).
	PriceRuleMatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_price_rule_matches_total",
			Help: "Resoluciones de precio por tipo de coincidencia de regla",
		},
		[]string{"scope"},
	)

	// MissingProductsTotal IDs pedidos que no existen en el catálogo.
	MissingProductsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_missing_products_total",
			Help: "IDs de producto solicitados y no encontrados en el catálogo",
		},
	)

	// ResolveDuration duración de la resolución de un lote (cargas + cálculo).
	ResolveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    prefix + "_price_resolve_duration_seconds",
			Help:    "Duración de la resolución de un lote de precios",
			Buckets: prometheus.DefBuckets,
		},
	)
)
