package domain

import (
	"fmt"
)

// IdentifierPrefix is reserved for the identifiers of the injected code so
// they cannot collide with declarations of the augmented program.
const IdentifierPrefix = "__EXPAND_MY_TYPE__"

// NeverType is returned for an empty expression.
const NeverType = "never"

// ExpandCodeBlock generates the type declarations injected at the top of the
// designated unit. The first declared identifier is the result alias whose
// type is the full expansion of typeExpression:
//   - object-like types are mapped property by property and flattened with "& {}";
//   - callables keep their shape with parameter and return types expanded;
//   - one level of Promise is unwrapped, its payload expanded and re-wrapped;
//   - string-valued properties go through a template-literal round trip that
//     keeps unions of string literals from being displayed as their alias.
//
// The expression is inserted verbatim; the engine decides what a malformed
// expression resolves to.
func ExpandCodeBlock(typeExpression string) string {
	p := IdentifierPrefix

	return fmt.Sprintf(`type %[1]sResult = %[1]sExpand<%[1]sExpression>;
type %[1]sExpression = %[2]s;

type %[1]sExpand<T> =
    T extends (...args: infer A) => infer R ? (...args: %[1]sExpand<A>) => %[1]sExpand<R>
  : T extends Promise<infer U> ? Promise<%[1]sExpandTypeArgument<U>>
  : { [K in keyof T]: T[K] extends string ? %[1]sExpandString<T[K]> : %[1]sExpand<T[K]>; } & {};

type %[1]sExpandTypeArgument<T> = [T & {}] extends [never] ? T : T & {} extends void ? T : %[1]sExpand<T & {}>;

type %[1]sExpandString<T extends string> = %[1]sRemoveUnderscore<%[1]sAppendUnderscore<T>>;
type %[1]sAppendUnderscore<T extends string> = `+"`${T}_`"+` extends string ? `+"`${T}_`"+` : never;
type %[1]sRemoveUnderscore<T extends string> = T extends `+"`${infer U}_`"+` ? U : never;`, p, typeExpression)
}
