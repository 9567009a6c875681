package tokens

import (
	"fmt"
	"strings"
)

type Keyword uint8

const (
	KeywordAbstract Keyword = iota + 1
	KeywordAssert
	KeywordBoolean
	KeywordBreak
	KeywordByte
	KeywordCase
	KeywordCatch
	KeywordChar
	KeywordClass
	KeywordConst
	KeywordContinue
	KeywordDefault
	KeywordDo
	KeywordDouble
	KeywordElse
	KeywordEnum
	KeywordExtends
	KeywordFinal
	KeywordFinally
	KeywordFloat
	KeywordFor
	KeywordGoto
	KeywordIf
	KeywordImplements
	KeywordImport
	KeywordInstanceof
	KeywordInt
	KeywordInterface
	KeywordLong
	KeywordNative
	KeywordNew
	KeywordPackage
	KeywordPrivate
	KeywordProtected
	KeywordPublic
	KeywordReturn
	KeywordShort
	KeywordStatic
	KeywordStrictfp
	KeywordSuper
	KeywordSwitch
	KeywordSynchronized
	KeywordThis
	KeywordThrow
	KeywordThrows
	KeywordTransient
	KeywordTry
	KeywordUnderscore
	KeywordVar
	KeywordVoid
	KeywordVolatile
	KeywordWhile
	numKeywords
)

var keywordSpellings = [numKeywords]string{
	KeywordAbstract:     "abstract",
	KeywordAssert:       "assert",
	KeywordBoolean:      "boolean",
	KeywordBreak:        "break",
	KeywordByte:         "byte",
	KeywordCase:         "case",
	KeywordCatch:        "catch",
	KeywordChar:         "char",
	KeywordClass:        "class",
	KeywordConst:        "const",
	KeywordContinue:     "continue",
	KeywordDefault:      "default",
	KeywordDo:           "do",
	KeywordDouble:       "double",
	KeywordElse:         "else",
	KeywordEnum:         "enum",
	KeywordExtends:      "extends",
	KeywordFinal:        "final",
	KeywordFinally:      "finally",
	KeywordFloat:        "float",
	KeywordFor:          "for",
	KeywordGoto:         "goto",
	KeywordIf:           "if",
	KeywordImplements:   "implements",
	KeywordImport:       "import",
	KeywordInstanceof:   "instanceof",
	KeywordInt:          "int",
	KeywordInterface:    "interface",
	KeywordLong:         "long",
	KeywordNative:       "native",
	KeywordNew:          "new",
	KeywordPackage:      "package",
	KeywordPrivate:      "private",
	KeywordProtected:    "protected",
	KeywordPublic:       "public",
	KeywordReturn:       "return",
	KeywordShort:        "short",
	KeywordStatic:       "static",
	KeywordStrictfp:     "strictfp",
	KeywordSuper:        "super",
	KeywordSwitch:       "switch",
	KeywordSynchronized: "synchronized",
	KeywordThis:         "this",
	KeywordThrow:        "throw",
	KeywordThrows:       "throws",
	KeywordTransient:    "transient",
	KeywordTry:          "try",
	KeywordUnderscore:   "_",
	KeywordVar:          "var",
	KeywordVoid:         "void",
	KeywordVolatile:     "volatile",
	KeywordWhile:        "while",
}

var keywords = func() map[string]Keyword {
	ret := make(map[string]Keyword, numKeywords)
	for k := KeywordAbstract; k < numKeywords; k++ {
		ret[keywordSpellings[k]] = k
	}
	return ret
}()

func LookupKeyword(text string) (Keyword, bool) {
	k, ok := keywords[text]
	return k, ok
}

func IsKeyword(text string) bool {
	_, ok := keywords[text]
	return ok
}

// Keywords returns all keywords in declaration order.
func Keywords() []Keyword {
	ret := make([]Keyword, 0, numKeywords-1)
	for k := KeywordAbstract; k < numKeywords; k++ {
		ret = append(ret, k)
	}
	return ret
}

// String returns the spelling.
func (k Keyword) String() string {
	if k >= KeywordAbstract && k < numKeywords {
		return keywordSpellings[k]
	}
	return fmt.Sprintf("Keyword(%d)", k)
}

func (k Keyword) Name() string {
	if k == KeywordUnderscore {
		return "UNDERSCORE"
	}
	return strings.ToUpper(k.String())
}
