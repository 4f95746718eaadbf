package httputil

import (
	"net/url"
	"reflect"
)

// GetURLFields checks which query parameters are set.
//
// queryFields contains the field names that can be passed to a gorm Where
// statement directly. It is []any since gorm takes interface{} there.
//
// setFields contains all field names set in the query string. This is
// used to filter for zero values without pointer fields on the model.
func GetURLFields(url *url.URL, filter any) ([]any, []string) {
	var queryFields []any
	var setFields []string

	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i).Name
		param := val.Type().Field(i).Tag.Get("form")

		// filterField:"false" marks meta fields that the controllers
		// process themselves, e.g. search or the pagination settings
		filterField := val.Type().Field(i).Tag.Get("filterField")

		if url.Query().Has(param) {
			setFields = append(setFields, field)

			if filterField != "false" {
				queryFields = append(queryFields, field)
			}
		}
	}
	return queryFields, setFields
}
