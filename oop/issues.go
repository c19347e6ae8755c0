package oop

import "github.com/lyraproj/issue/issue"

const (
	NotAClass  = `MOONY_NOT_A_CLASS`
	NotAMethod = `MOONY_NOT_A_METHOD`
)

func init() {
	issue.Hard(NotAClass, `The value '%{value}' cannot be instantiated. It is not a class`)

	issue.Hard(NotAMethod, `'%{name}' is not a callable member of %{class}`)
}
