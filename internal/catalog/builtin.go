package catalog

// Builtin returns the registry of jpx builtin functions: the standard
// JMESPath set followed by the extension categories, in the engine's
// registration order.
func Builtin() *Registry {
	r := New()
	for _, d := range builtins {
		r.Register(d)
	}
	return r
}

var builtins = []Descriptor{
	// Standard JMESPath functions.
	{Name: "abs", Category: Standard, Description: "Returns the absolute value of a number",
		Signature: "number -> number", Example: "abs(`-5`) -> 5"},
	{Name: "avg", Category: Standard, Description: "Returns the average of an array of numbers",
		Signature: "array[number] -> number", Example: "avg([1, 2, 3]) -> 2"},
	{Name: "ceil", Category: Standard, Description: "Returns the smallest integer greater than or equal to the number",
		Signature: "number -> number", Example: "ceil(`1.5`) -> 2"},
	{Name: "contains", Category: Standard, Description: "Returns true if the subject contains the search value",
		Signature: "array|string, any -> boolean", Example: "contains([1, 2, 3], `2`) -> true"},
	{Name: "ends_with", Category: Standard, Description: "Returns true if the subject ends with the suffix",
		Signature: "string, string -> boolean", Example: "ends_with('hello', 'lo') -> true"},
	{Name: "floor", Category: Standard, Description: "Returns the largest integer less than or equal to the number",
		Signature: "number -> number", Example: "floor(`1.9`) -> 1"},
	{Name: "join", Category: Standard, Description: "Returns array elements joined into a string with a separator",
		Signature: "string, array[string] -> string", Example: "join(', ', ['a', 'b', 'c']) -> \"a, b, c\""},
	{Name: "keys", Category: Standard, Description: "Returns an array of keys from an object",
		Signature: "object -> array[string]", Example: "keys({a: 1, b: 2}) -> [\"a\", \"b\"]"},
	{Name: "length", Category: Standard, Description: "Returns the length of an array, object, or string",
		Signature: "array|object|string -> number", Example: "length([1, 2, 3]) -> 3"},
	{Name: "map", Category: Standard, Description: "Applies an expression to each element of an array",
		Signature: "expression, array -> array", Example: "map(&a, [{a: 1}, {a: 2}]) -> [1, 2]"},
	{Name: "max", Category: Standard, Description: "Returns the maximum value in an array",
		Signature: "array[number]|array[string] -> number|string", Example: "max([1, 3, 2]) -> 3"},
	{Name: "max_by", Category: Standard, Description: "Returns the element with maximum value by expression",
		Signature: "array, expression -> any", Example: "max_by([{a: 1}, {a: 2}], &a) -> {a: 2}"},
	{Name: "merge", Category: Standard, Description: "Merges objects into a single object",
		Signature: "object... -> object", Example: "merge({a: 1}, {b: 2}) -> {a: 1, b: 2}"},
	{Name: "min", Category: Standard, Description: "Returns the minimum value in an array",
		Signature: "array[number]|array[string] -> number|string", Example: "min([1, 3, 2]) -> 1"},
	{Name: "min_by", Category: Standard, Description: "Returns the element with minimum value by expression",
		Signature: "array, expression -> any", Example: "min_by([{a: 1}, {a: 2}], &a) -> {a: 1}"},
	{Name: "not_null", Category: Standard, Description: "Returns the first non-null argument",
		Signature: "any... -> any", Example: "not_null(`null`, 'a', 'b') -> \"a\""},
	{Name: "reverse", Category: Standard, Description: "Reverses an array or string",
		Signature: "array|string -> array|string", Example: "reverse([1, 2, 3]) -> [3, 2, 1]"},
	{Name: "sort", Category: Standard, Description: "Sorts an array of numbers or strings",
		Signature: "array[number]|array[string] -> array", Example: "sort([3, 1, 2]) -> [1, 2, 3]"},
	{Name: "sort_by", Category: Standard, Description: "Sorts an array by expression result",
		Signature: "array, expression -> array", Example: "sort_by([{a: 2}, {a: 1}], &a) -> [{a: 1}, {a: 2}]"},
	{Name: "starts_with", Category: Standard, Description: "Returns true if the subject starts with the prefix",
		Signature: "string, string -> boolean", Example: "starts_with('hello', 'he') -> true"},
	{Name: "sum", Category: Standard, Description: "Returns the sum of an array of numbers",
		Signature: "array[number] -> number", Example: "sum([1, 2, 3]) -> 6"},
	{Name: "to_array", Category: Standard, Description: "Converts a value to an array",
		Signature: "any -> array", Example: "to_array('hello') -> [\"hello\"]"},
	{Name: "to_number", Category: Standard, Description: "Converts a value to a number",
		Signature: "any -> number", Example: "to_number('42') -> 42"},
	{Name: "to_string", Category: Standard, Description: "Converts a value to a string",
		Signature: "any -> string", Example: "to_string(`42`) -> \"42\""},
	{Name: "type", Category: Standard, Description: "Returns the type of a value as a string",
		Signature: "any -> string", Example: "type('hello') -> \"string\""},
	{Name: "values", Category: Standard, Description: "Returns an array of values from an object",
		Signature: "object -> array", Example: "values({a: 1, b: 2}) -> [1, 2]"},

	// String extensions.
	{Name: "upper", Aliases: []string{"upper_case"}, Category: String, JEP: "JEP-014",
		Description: "Convert string to uppercase",
		Signature:   "string -> string", Example: "upper('hello') -> \"HELLO\""},
	{Name: "lower", Aliases: []string{"lower_case"}, Category: String, JEP: "JEP-014",
		Description: "Convert string to lowercase",
		Signature:   "string -> string", Example: "lower('HELLO') -> \"hello\""},
	{Name: "trim", Category: String, JEP: "JEP-014",
		Description: "Remove leading and trailing whitespace",
		Signature:   "string -> string", Example: "trim('  hello  ') -> \"hello\""},
	{Name: "trim_left", Category: String, JEP: "JEP-014",
		Description: "Remove leading whitespace",
		Signature:   "string -> string", Example: "trim_left('  hello') -> \"hello\""},
	{Name: "trim_right", Category: String, JEP: "JEP-014",
		Description: "Remove trailing whitespace",
		Signature:   "string -> string", Example: "trim_right('hello  ') -> \"hello\""},
	{Name: "split", Category: String, JEP: "JEP-014",
		Description: "Split string by delimiter",
		Signature:   "string, string -> array", Example: "split('a,b,c', ',') -> [\"a\", \"b\", \"c\"]"},
	{Name: "replace", Category: String, JEP: "JEP-014",
		Description: "Replace occurrences of a substring",
		Signature:   "string, string, string -> string", Example: "replace('hello', 'l', 'L') -> \"heLLo\""},
	{Name: "pad_left", Category: String, JEP: "JEP-014",
		Description: "Pad string on the left to reach target length",
		Signature:   "string, number, string -> string", Example: "pad_left('5', `3`, '0') -> \"005\""},
	{Name: "pad_right", Category: String, JEP: "JEP-014",
		Description: "Pad string on the right to reach target length",
		Signature:   "string, number, string -> string", Example: "pad_right('5', `3`, '0') -> \"500\""},
	{Name: "capitalize", Category: String,
		Description: "Capitalize the first character",
		Signature:   "string -> string", Example: "capitalize('hello') -> \"Hello\""},
	{Name: "title", Aliases: []string{"title_case"}, Category: String,
		Description: "Convert to title case",
		Signature:   "string -> string", Example: "title('hello world') -> \"Hello World\""},
	{Name: "camel_case", Category: String,
		Description: "Convert to camelCase",
		Signature:   "string -> string", Example: "camel_case('hello_world') -> \"helloWorld\""},
	{Name: "snake_case", Category: String,
		Description: "Convert to snake_case",
		Signature:   "string -> string", Example: "snake_case('helloWorld') -> \"hello_world\""},
	{Name: "kebab_case", Category: String,
		Description: "Convert to kebab-case",
		Signature:   "string -> string", Example: "kebab_case('helloWorld') -> \"hello-world\""},
	{Name: "substr", Category: String,
		Description: "Extract substring by start index and length",
		Signature:   "string, number, number -> string", Example: "substr('hello', `1`, `3`) -> \"ell\""},
	{Name: "find_first", Category: String, JEP: "JEP-014",
		Description: "Find first occurrence of substring",
		Signature:   "string, string -> number | null", Example: "find_first('hello', 'l') -> 2"},
	{Name: "find_last", Category: String, JEP: "JEP-014",
		Description: "Find last occurrence of substring",
		Signature:   "string, string -> number | null", Example: "find_last('hello', 'l') -> 3"},
	{Name: "concat", Category: String,
		Description: "Concatenate strings",
		Signature:   "string... -> string", Example: "concat('hello', ' ', 'world') -> \"hello world\""},
	{Name: "ltrimstr", Category: String,
		Description: "Remove prefix from string if present",
		Signature:   "string, string -> string", Example: "ltrimstr('foobar', 'foo') -> \"bar\""},
	{Name: "rtrimstr", Category: String,
		Description: "Remove suffix from string if present",
		Signature:   "string, string -> string", Example: "rtrimstr('foobar', 'bar') -> \"foo\""},
	{Name: "sprintf", Category: String,
		Description: "Printf-style string formatting",
		Signature:   "string, any... -> string", Example: "sprintf('Pi is %.2f', `3.14159`) -> \"Pi is 3.14\""},

	// Array extensions.
	{Name: "first", Category: Array, Description: "Get first element of array",
		Signature: "array -> any", Example: "first([1, 2, 3]) -> 1"},
	{Name: "last", Category: Array, Description: "Get last element of array",
		Signature: "array -> any", Example: "last([1, 2, 3]) -> 3"},
	{Name: "unique", Category: Array, Description: "Remove duplicate values",
		Signature: "array -> array", Example: "unique([1, 2, 1, 3]) -> [1, 2, 3]"},
	{Name: "take", Category: Array, Description: "Take first n elements",
		Signature: "array, number -> array", Example: "take([1, 2, 3, 4], `2`) -> [1, 2]"},
	{Name: "drop", Category: Array, Description: "Drop first n elements",
		Signature: "array, number -> array", Example: "drop([1, 2, 3, 4], `2`) -> [3, 4]"},
	{Name: "chunk", Category: Array, Description: "Split array into chunks of size n",
		Signature: "array, number -> array", Example: "chunk([1, 2, 3, 4], `2`) -> [[1, 2], [3, 4]]"},
	{Name: "zip", Category: Array, JEP: "JEP-013", Description: "Zip two arrays together",
		Signature: "array, array -> array", Example: "zip([1, 2], ['a', 'b']) -> [[1, 'a'], [2, 'b']]"},
	{Name: "flatten_deep", Category: Array, Description: "Recursively flatten nested arrays",
		Signature: "array -> array", Example: "flatten_deep([[1, [2]], [3]]) -> [1, 2, 3]"},
	{Name: "compact", Category: Array, Description: "Remove null values from array",
		Signature: "array -> array", Example: "compact([1, null, 2, null]) -> [1, 2]"},
	{Name: "range", Category: Array, Description: "Generate array of numbers",
		Signature: "number, number -> array", Example: "range(`1`, `5`) -> [1, 2, 3, 4]"},
	{Name: "includes", Category: Array, Description: "Check if array contains value",
		Signature: "array, any -> boolean", Example: "includes([1, 2, 3], `2`) -> true"},
	{Name: "find_index", Category: Array, Description: "Find index of value in array",
		Signature: "array, any -> number | null", Example: "find_index([1, 2, 3], `2`) -> 1"},
	{Name: "difference", Category: Array, Description: "Elements in first array not in second",
		Signature: "array, array -> array", Example: "difference([1, 2, 3], [2]) -> [1, 3]"},
	{Name: "intersection", Category: Array, Description: "Elements common to both arrays",
		Signature: "array, array -> array", Example: "intersection([1, 2], [2, 3]) -> [2]"},
	{Name: "union", Category: Array, Description: "Unique elements from both arrays",
		Signature: "array, array -> array", Example: "union([1, 2], [2, 3]) -> [1, 2, 3]"},
	{Name: "group_by", Category: Array, Description: "Group array elements by key",
		Signature: "array, string -> object", Example: "group_by([{t: 'a'}, {t: 'b'}], 't') -> {a: [...], b: [...]}"},
	{Name: "frequencies", Category: Array, Description: "Count occurrences of each value",
		Signature: "array -> object", Example: "frequencies(['a', 'b', 'a']) -> {a: 2, b: 1}"},

	// Object extensions.
	{Name: "items", Category: Object, JEP: "JEP-013",
		Description: "Convert object to array of [key, value] pairs",
		Signature:   "object -> array", Example: "items({a: 1}) -> [[\"a\", 1]]"},
	{Name: "from_items", Category: Object, JEP: "JEP-013",
		Description: "Convert array of [key, value] pairs to object",
		Signature:   "array -> object", Example: "from_items([['a', 1]]) -> {a: 1}"},
	{Name: "pick", Category: Object, Description: "Select specific keys from object",
		Signature: "object, array -> object", Example: "pick({a: 1, b: 2}, ['a']) -> {a: 1}"},
	{Name: "omit", Category: Object, Description: "Remove specific keys from object",
		Signature: "object, array -> object", Example: "omit({a: 1, b: 2}, ['a']) -> {b: 2}"},
	{Name: "deep_merge", Category: Object, Description: "Recursively merge objects",
		Signature: "object, object -> object", Example: "deep_merge({a: {b: 1}}, {a: {c: 2}}) -> {a: {b: 1, c: 2}}"},
	{Name: "invert", Category: Object, Description: "Swap keys and values",
		Signature: "object -> object", Example: "invert({a: 'x'}) -> {x: 'a'}"},

	// Math extensions.
	{Name: "round", Category: Math, Description: "Round to specified decimal places",
		Signature: "number, number -> number", Example: "round(`3.14159`, `2`) -> 3.14"},
	{Name: "pow", Category: Math, Description: "Raise to power",
		Signature: "number, number -> number", Example: "pow(`2`, `3`) -> 8"},
	{Name: "sqrt", Category: Math, Description: "Square root",
		Signature: "number -> number", Example: "sqrt(`16`) -> 4"},
	{Name: "clamp", Category: Math, Description: "Clamp value to range",
		Signature: "number, number, number -> number", Example: "clamp(`15`, `0`, `10`) -> 10"},
	{Name: "median", Category: Math, Description: "Calculate median of array",
		Signature: "array -> number", Example: "median([1, 2, 3, 4, 5]) -> 3"},
	{Name: "percentile", Category: Math, Description: "Calculate percentile of array",
		Signature: "array, number -> number", Example: "percentile([1, 2, 3, 4, 5], `50`) -> 3"},
	{Name: "variance", Category: Math, Description: "Calculate variance of array",
		Signature: "array -> number", Example: "variance([1, 2, 3, 4, 5]) -> 2"},
	{Name: "stddev", Category: Math, Description: "Calculate standard deviation of array",
		Signature: "array -> number", Example: "stddev([1, 2, 3, 4, 5]) -> 1.414..."},

	// Type predicates and conversions.
	{Name: "type_of", Category: Type, Description: "Get the type of a value",
		Signature: "any -> string", Example: "type_of(`42`) -> \"number\""},
	{Name: "is_string", Category: Type, Description: "Check if value is a string",
		Signature: "any -> boolean", Example: "is_string('hello') -> true"},
	{Name: "is_number", Category: Type, Description: "Check if value is a number",
		Signature: "any -> boolean", Example: "is_number(`42`) -> true"},
	{Name: "is_array", Category: Type, Description: "Check if value is an array",
		Signature: "any -> boolean", Example: "is_array([1, 2]) -> true"},
	{Name: "is_object", Category: Type, Description: "Check if value is an object",
		Signature: "any -> boolean", Example: "is_object({a: 1}) -> true"},
	{Name: "is_null", Category: Type, Description: "Check if value is null",
		Signature: "any -> boolean", Example: "is_null(`null`) -> true"},
	{Name: "is_empty", Category: Type, Description: "Check if value is empty",
		Signature: "any -> boolean", Example: "is_empty([]) -> true"},
	{Name: "to_boolean", Category: Type, Description: "Convert value to boolean",
		Signature: "any -> boolean", Example: "to_boolean('true') -> true"},

	// Utility.
	{Name: "default", Category: Utility, Description: "Return default value if null",
		Signature: "any, any -> any", Example: "default(`null`, 'fallback') -> \"fallback\""},
	{Name: "if", Category: Utility, Description: "Conditional expression",
		Signature: "boolean, any, any -> any", Example: "if(`true`, 'yes', 'no') -> \"yes\""},
	{Name: "coalesce", Category: Utility, Description: "Return first non-null value",
		Signature: "any... -> any", Example: "coalesce(`null`, `null`, 'value') -> \"value\""},
	{Name: "now", Category: Utility, Description: "Current Unix timestamp in seconds",
		Signature: "-> number", Example: "now() -> 1699900000"},
	{Name: "json_decode", Category: Utility, Description: "Parse JSON string",
		Signature: "string -> any", Example: "json_decode('{\"a\": 1}') -> {a: 1}"},
	{Name: "json_encode", Category: Utility, Description: "Serialize value to JSON string",
		Signature: "any -> string", Example: "json_encode({a: 1}) -> \"{\\\"a\\\":1}\""},
	{Name: "json_pointer", Category: Utility, Description: "Access value using JSON Pointer (RFC 6901)",
		Signature: "any, string -> any", Example: "json_pointer({foo: {bar: 1}}, '/foo/bar') -> 1"},

	// Validation.
	{Name: "is_email", Category: Validation, Description: "Validate email address format",
		Signature: "string -> boolean", Example: "is_email('user@example.com') -> true"},

	// Expression helpers.
	{Name: "map_expr", Category: Expression, Description: "Map expression over array",
		Signature: "array, expression -> array", Example: "map_expr([1, 2], &@ * `2`) -> [2, 4]"},
	{Name: "filter_expr", Category: Expression, Description: "Filter array by expression",
		Signature: "array, expression -> array", Example: "filter_expr([1, 2, 3], &@ > `1`) -> [2, 3]"},
	{Name: "any_expr", Category: Expression, Description: "Check if any element matches",
		Signature: "array, expression -> boolean", Example: "any_expr([1, 2, 3], &@ > `2`) -> true"},
	{Name: "all_expr", Category: Expression, Description: "Check if all elements match",
		Signature: "array, expression -> boolean", Example: "all_expr([1, 2, 3], &@ > `0`) -> true"},
	{Name: "find_expr", Category: Expression, Description: "Find first element matching expression",
		Signature: "array, expression -> any", Example: "find_expr([1, 2, 3], &@ > `1`) -> 2"},

	// Hash and encoding.
	{Name: "md5", Category: Hash, Description: "Calculate MD5 hash",
		Signature: "string -> string", Example: "md5('hello') -> \"5d41402abc4b2a76b9719d911017c592\""},
	{Name: "sha1", Category: Hash, Description: "Calculate SHA-1 hash",
		Signature: "string -> string", Example: "sha1('hello') -> \"aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d\""},
	{Name: "sha256", Category: Hash, Description: "Calculate SHA-256 hash",
		Signature: "string -> string", Example: "sha256('hello') -> \"2cf24dba...\""},
	{Name: "crc32", Category: Hash, Description: "Calculate CRC32 checksum",
		Signature: "string -> number", Example: "crc32('hello') -> 907060870"},
	{Name: "base64_encode", Category: Encoding, Description: "Encode string to base64",
		Signature: "string -> string", Example: "base64_encode('hello') -> \"aGVsbG8=\""},
	{Name: "base64_decode", Category: Encoding, Description: "Decode base64 string",
		Signature: "string -> string", Example: "base64_decode('aGVsbG8=') -> \"hello\""},
	{Name: "hex_encode", Category: Encoding, Description: "Encode string to hex",
		Signature: "string -> string", Example: "hex_encode('hello') -> \"68656c6c6f\""},
	{Name: "hex_decode", Category: Encoding, Description: "Decode hex string",
		Signature: "string -> string", Example: "hex_decode('68656c6c6f') -> \"hello\""},

	// Regex and URL.
	{Name: "regex_match", Category: Regex, Description: "Test if string matches regex",
		Signature: "string, string -> boolean", Example: "regex_match('hello', '^h.*o$') -> true"},
	{Name: "regex_extract", Category: Regex, Description: "Extract regex matches",
		Signature: "string, string -> array", Example: "regex_extract('a1b2', '\\\\d+') -> [\"1\", \"2\"]"},
	{Name: "regex_replace", Category: Regex, Description: "Replace regex matches",
		Signature: "string, string, string -> string", Example: "regex_replace('a1b2', '\\\\d+', 'X') -> \"aXbX\""},
	{Name: "url_encode", Category: URL, Description: "URL encode a string",
		Signature: "string -> string", Example: "url_encode('hello world') -> \"hello%20world\""},
	{Name: "url_decode", Category: URL, Description: "URL decode a string",
		Signature: "string -> string", Example: "url_decode('hello%20world') -> \"hello world\""},
	{Name: "url_parse", Category: URL, Description: "Parse URL into components",
		Signature: "string -> object", Example: "url_parse('https://example.com/path') -> {scheme: 'https', ...}"},

	// UUID and randomness.
	{Name: "uuid", Category: UUID, Description: "Generate a UUID v4",
		Signature: "-> string", Example: "uuid() -> \"550e8400-e29b-41d4-a716-446655440000\""},
	{Name: "random", Category: Rand, Description: "Generate random number between 0 and 1",
		Signature: "-> number", Example: "random() -> 0.123456..."},
	{Name: "shuffle", Category: Rand, Description: "Randomly shuffle array",
		Signature: "array -> array", Example: "shuffle([1, 2, 3]) -> [2, 3, 1]"},
	{Name: "sample", Category: Rand, Description: "Random sample from array",
		Signature: "array, number -> array", Example: "sample([1, 2, 3, 4], `2`) -> [3, 1]"},

	// Datetime.
	{Name: "parse_date", Category: Datetime, Description: "Parse date string to timestamp",
		Signature: "string, string? -> number", Example: "parse_date('2024-01-15', '%Y-%m-%d') -> 1705276800"},
	{Name: "format_date", Category: Datetime, Description: "Format timestamp to string",
		Signature: "number, string -> string", Example: "format_date(`1705276800`, '%Y-%m-%d') -> \"2024-01-15\""},
	{Name: "date_add", Category: Datetime, Description: "Add time to timestamp",
		Signature: "number, number, string -> number", Example: "date_add(`0`, `1`, 'days') -> 86400"},
	{Name: "date_diff", Category: Datetime, Description: "Difference between timestamps",
		Signature: "number, number, string -> number", Example: "date_diff(`86400`, `0`, 'days') -> 1"},

	// Geo.
	{Name: "haversine", Category: Geo, Description: "Haversine distance in meters",
		Signature: "number, number, number, number -> number",
		Example:   "haversine(`40.7128`, `-74.0060`, `51.5074`, `-0.1278`) -> 5570222"},
	{Name: "haversine_km", Category: Geo, Description: "Haversine distance in kilometers",
		Signature: "number, number, number, number -> number",
		Example:   "haversine_km(`40.7128`, `-74.0060`, `51.5074`, `-0.1278`) -> 5570.2"},
	{Name: "bearing", Category: Geo, Description: "Bearing between coordinates",
		Signature: "number, number, number, number -> number",
		Example:   "bearing(`40.7128`, `-74.0060`, `51.5074`, `-0.1278`) -> 51.2"},

	// Computing.
	{Name: "parse_bytes", Category: Computing, Description: "Parse byte size string",
		Signature: "string -> number", Example: "parse_bytes('1.5 GB') -> 1500000000"},
	{Name: "format_bytes", Category: Computing, Description: "Format bytes (decimal)",
		Signature: "number -> string", Example: "format_bytes(`1500000000`) -> \"1.50 GB\""},
	{Name: "bit_and", Category: Computing, Description: "Bitwise AND",
		Signature: "number, number -> number", Example: "bit_and(`12`, `10`) -> 8"},
}
