package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/uaschema/internal/config"
	"github.com/specialistvlad/uaschema/internal/ctxlog"
	"github.com/specialistvlad/uaschema/internal/nodeid"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// isExprDefined checks if an HCL expression was actually present in the
// source. gohcl fills omitted optional attributes with a zero-width
// placeholder expression, so a nil check is not enough.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	if expr == nil {
		return false
	}
	exprRange := expr.Range()
	isDefined := exprRange.End.Byte > exprRange.Start.Byte

	ctxlog.FromContext(ctx).Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName,
		"hcl_range", exprRange.String(),
		"is_defined", isDefined,
	)
	return isDefined
}

// evalLiteral evaluates expr without variables or functions.
func evalLiteral(expr hcl.Expression) (cty.Value, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, diags
	}
	if val.IsNull() || !val.IsWhollyKnown() {
		return cty.NilVal, fmt.Errorf("value must be a literal")
	}
	return val, nil
}

// evalInt64 evaluates a whole number. Numeric strings are accepted.
func evalInt64(expr hcl.Expression) (int64, error) {
	val, err := evalLiteral(expr)
	if err != nil {
		return 0, err
	}
	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("expected a number, got %s", val.Type().FriendlyName())
	}
	if !num.AsBigFloat().IsInt() {
		return 0, fmt.Errorf("expected a whole number, got %s", num.AsBigFloat().Text('g', -1))
	}
	var n int64
	if err := gocty.FromCtyValue(num, &n); err != nil {
		return 0, err
	}
	return n, nil
}

// evalIdentity builds a descriptor identity from the `id` attribute and the
// optional `namespace` attribute. `id` is either the canonical identity text
// or a number in the given namespace (0 if omitted).
func evalIdentity(ctx context.Context, idExpr, nsExpr hcl.Expression) (nodeid.ID, error) {
	if !isExprDefined(ctx, idExpr, "id") {
		return nodeid.ID{}, fmt.Errorf("%w: missing required attribute \"id\"", nodeid.ErrMalformedIdentity)
	}

	var namespace *int
	if isExprDefined(ctx, nsExpr, "namespace") {
		n, err := evalInt64(nsExpr)
		if err != nil {
			return nodeid.ID{}, fmt.Errorf("%w: namespace: %v", nodeid.ErrMalformedIdentity, err)
		}
		ns := int(n)
		namespace = &ns
	}

	val, err := evalLiteral(idExpr)
	if err != nil {
		return nodeid.ID{}, fmt.Errorf("%w: id: %v", nodeid.ErrMalformedIdentity, err)
	}

	switch val.Type() {
	case cty.String:
		text := val.AsString()
		return config.Identity(&text, nil, namespace)
	case cty.Number:
		if !val.AsBigFloat().IsInt() {
			return nodeid.ID{}, fmt.Errorf("%w: id must be a whole number, got %s", nodeid.ErrMalformedIdentity, val.AsBigFloat().Text('g', -1))
		}
		var numeric uint64
		if err := gocty.FromCtyValue(val, &numeric); err != nil {
			return nodeid.ID{}, fmt.Errorf("%w: id: %v", nodeid.ErrMalformedIdentity, err)
		}
		return config.Identity(nil, &numeric, namespace)
	default:
		return nodeid.ID{}, fmt.Errorf("%w: id must be a string or a number, got %s", nodeid.ErrMalformedIdentity, val.Type().FriendlyName())
	}
}

// evalTypeName reads a field type given as a bare keyword (`type = Double`)
// or as a string (`type = "2:BoilerState"`).
func evalTypeName(ctx context.Context, expr hcl.Expression) (string, error) {
	if !isExprDefined(ctx, expr, "type") {
		return "", fmt.Errorf("missing required attribute \"type\"")
	}
	if kw := hcl.ExprAsKeyword(expr); kw != "" {
		return kw, nil
	}
	val, err := evalLiteral(expr)
	if err != nil {
		return "", err
	}
	if val.Type() != cty.String {
		return "", fmt.Errorf("type must be a name, got %s", val.Type().FriendlyName())
	}
	if val.AsString() == "" {
		return "", fmt.Errorf("type must not be empty")
	}
	return val.AsString(), nil
}
