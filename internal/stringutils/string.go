package stringutils

import "strings"

func LCase[T ~string](s T) T { return T(strings.ToLower(string(s))) }
