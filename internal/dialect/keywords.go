package dialect

// Keyword tables map each reserved word to the standard that introduced it.

var cKeywords = map[string]Standard{
	"auto":     C89,
	"break":    C89,
	"case":     C89,
	"char":     C89,
	"const":    C89,
	"continue": C89,
	"default":  C89,
	"do":       C89,
	"double":   C89,
	"else":     C89,
	"enum":     C89,
	"extern":   C89,
	"float":    C89,
	"for":      C89,
	"goto":     C89,
	"if":       C89,
	"int":      C89,
	"long":     C89,
	"register": C89,
	"return":   C89,
	"short":    C89,
	"signed":   C89,
	"sizeof":   C89,
	"static":   C89,
	"struct":   C89,
	"switch":   C89,
	"typedef":  C89,
	"union":    C89,
	"unsigned": C89,
	"void":     C89,
	"volatile": C89,
	"while":    C89,

	"inline":     C99,
	"restrict":   C99,
	"_Bool":      C99,
	"_Complex":   C99,
	"_Imaginary": C99,

	"_Alignas":       C11,
	"_Alignof":       C11,
	"_Atomic":        C11,
	"_Generic":       C11,
	"_Noreturn":      C11,
	"_Static_assert": C11,
	"_Thread_local":  C11,

	"alignas":        C23,
	"alignof":        C23,
	"bool":           C23,
	"constexpr":      C23,
	"false":          C23,
	"nullptr":        C23,
	"static_assert":  C23,
	"thread_local":   C23,
	"true":           C23,
	"typeof":         C23,
	"typeof_unqual":  C23,
	"_BitInt":        C23,
	"_Decimal32":     C23,
	"_Decimal64":     C23,
	"_Decimal128":    C23,
}

var cppKeywords = map[string]Standard{
	"asm":              CPP03,
	"auto":             CPP03,
	"bool":             CPP03,
	"break":            CPP03,
	"case":             CPP03,
	"catch":            CPP03,
	"char":             CPP03,
	"class":            CPP03,
	"const":            CPP03,
	"const_cast":       CPP03,
	"continue":         CPP03,
	"default":          CPP03,
	"delete":           CPP03,
	"do":               CPP03,
	"double":           CPP03,
	"dynamic_cast":     CPP03,
	"else":             CPP03,
	"enum":             CPP03,
	"explicit":         CPP03,
	"export":           CPP03,
	"extern":           CPP03,
	"false":            CPP03,
	"float":            CPP03,
	"for":              CPP03,
	"friend":           CPP03,
	"goto":             CPP03,
	"if":               CPP03,
	"inline":           CPP03,
	"int":              CPP03,
	"long":             CPP03,
	"mutable":          CPP03,
	"namespace":        CPP03,
	"new":              CPP03,
	"operator":         CPP03,
	"private":          CPP03,
	"protected":        CPP03,
	"public":           CPP03,
	"register":         CPP03,
	"reinterpret_cast": CPP03,
	"return":           CPP03,
	"short":            CPP03,
	"signed":           CPP03,
	"sizeof":           CPP03,
	"static":           CPP03,
	"static_cast":      CPP03,
	"struct":           CPP03,
	"switch":           CPP03,
	"template":         CPP03,
	"this":             CPP03,
	"throw":            CPP03,
	"true":             CPP03,
	"try":              CPP03,
	"typedef":          CPP03,
	"typeid":           CPP03,
	"typename":         CPP03,
	"union":            CPP03,
	"unsigned":         CPP03,
	"using":            CPP03,
	"virtual":          CPP03,
	"void":             CPP03,
	"volatile":         CPP03,
	"wchar_t":          CPP03,
	"while":            CPP03,

	"alignas":       CPP11,
	"alignof":       CPP11,
	"char16_t":      CPP11,
	"char32_t":      CPP11,
	"constexpr":     CPP11,
	"decltype":      CPP11,
	"noexcept":      CPP11,
	"nullptr":       CPP11,
	"static_assert": CPP11,
	"thread_local":  CPP11,

	"char8_t":   CPP20,
	"concept":   CPP20,
	"consteval": CPP20,
	"constinit": CPP20,
	"co_await":  CPP20,
	"co_return": CPP20,
	"co_yield":  CPP20,
	"requires":  CPP20,
}
