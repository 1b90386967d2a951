package postgres_adapter

import (
	"fmt"
	"strings"

	"aqar-service/internal/core/domain"
)

type queryBuilder struct {
	conditions []string
	args       []interface{}
	argID      int
}

func newQueryBuilder(base ...string) *queryBuilder {
	return &queryBuilder{
		conditions: base,
		args:       make([]interface{}, 0),
		argID:      1,
	}
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argID))
	qb.args = append(qb.args, arg)
	qb.argID++
}

// AddFloatRange/AddIntRange add inclusive bounds for whichever ends are set.
func (qb *queryBuilder) AddFloatRange(fieldName string, min *float64, max *float64) {
	if min != nil {
		qb.addCondition("%s >= $%d", fieldName, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", fieldName, *max)
	}
}

func (qb *queryBuilder) AddIntRange(fieldName string, min *int, max *int) {
	if min != nil {
		qb.addCondition("%s >= $%d", fieldName, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", fieldName, *max)
	}
}

func (qb *queryBuilder) build() (string, []interface{}) {
	whereClause := ""
	if len(qb.conditions) > 0 {
		whereClause = "WHERE " + strings.Join(qb.conditions, " AND ")
	}
	return whereClause, qb.args
}

// applyFilters compiles the search filters into a WHERE clause. The
// semantics mirror domain.PropertyFilters.Matches: present filters are
// AND-ed, absent filters impose no constraint, and public search is always
// restricted to published rows.
func applyFilters(filters domain.PropertyFilters) (string, []interface{}) {
	qb := newQueryBuilder("available = TRUE")

	qb.AddFloatRange("price", filters.MinPrice, filters.MaxPrice)
	qb.AddIntRange("size", filters.MinSize, filters.MaxSize)

	if filters.MinBedrooms != nil {
		qb.addCondition("%s >= $%d", "bedrooms", *filters.MinBedrooms)
	}
	if filters.MinBathrooms != nil {
		qb.addCondition("%s >= $%d", "bathrooms", *filters.MinBathrooms)
	}
	if filters.PropertyType != nil && *filters.PropertyType != "" {
		qb.addCondition("%s = $%d", "property_type", *filters.PropertyType)
	}
	if filters.GovernorateID != nil {
		qb.addCondition("%s = $%d", "governorate_id", *filters.GovernorateID)
	}
	if filters.DirectorateID != nil {
		qb.addCondition("%s = $%d", "directorate_id", *filters.DirectorateID)
	}

	// Substring match across the free-text location fields. The needle is
	// matched literally, so ILIKE metacharacters get escaped.
	if filters.Location != nil && *filters.Location != "" {
		qb.addCondition("%s ILIKE $%d",
			"concat_ws(' ', village, basin, neighborhood, address)",
			"%"+escapeLikePattern(*filters.Location)+"%")
	}

	return qb.build()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLikePattern(s string) string {
	return likeEscaper.Replace(s)
}
