package palindrome_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jvaldezr/palindromo/internal/palindrome"
)

func TestPalindrome(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Palindrome Suite")
}

var _ = Describe("Normalize", func() {
	It("lowercases input", func() {
		Expect(palindrome.Normalize("Radar")).To(Equal("radar"))
	})

	It("strips accents down to the base letter", func() {
		Expect(palindrome.Normalize("Sé verlas al revés")).To(Equal("severlasalreves"))
	})

	It("removes whitespace and punctuation", func() {
		Expect(palindrome.Normalize("Anita lava la tina!")).To(Equal("anitalavalatina"))
	})

	It("keeps digits", func() {
		Expect(palindrome.Normalize("12-3-21")).To(Equal("12321"))
	})

	It("maps punctuation-only input to empty", func() {
		Expect(palindrome.Normalize("¡¿...?!")).To(Equal(""))
	})

	It("maps empty input to empty", func() {
		Expect(palindrome.Normalize("")).To(Equal(""))
	})

	DescribeTable("is idempotent",
		func(input string) {
			once := palindrome.Normalize(input)
			Expect(palindrome.Normalize(once)).To(Equal(once))
		},
		Entry("plain word", "radar"),
		Entry("mixed case", "Radar"),
		Entry("accented phrase", "Sé verlas al revés"),
		Entry("phrase with spaces", "Anita lava la tina"),
		Entry("punctuation only", "!!! ???"),
		Entry("empty", ""),
		Entry("digits and symbols", "1, 2 y 3"),
	)
})

var _ = Describe("IsPalindrome", func() {
	DescribeTable("verdicts",
		func(input string, want bool) {
			Expect(palindrome.IsPalindrome(input)).To(Equal(want))
		},
		Entry("simple palindrome", "radar", true),
		Entry("case-insensitive", "Radar", true),
		Entry("phrase with spaces", "Anita lava la tina", true),
		Entry("accented phrase", "Sé verlas al revés", true),
		Entry("non-palindrome", "hola", false),
		Entry("empty string", "", false),
		Entry("whitespace only", "   ", false),
		Entry("punctuation only", "?!", false),
		Entry("single letter", "a", true),
		Entry("single uppercase letter", "Z", true),
		Entry("single digit", "7", true),
		Entry("digit palindrome", "12321", true),
		Entry("digit non-palindrome", "12345", false),
		Entry("accented single letter", "á", true),
	)

	It("compares code points rather than bytes", func() {
		// Multi-byte letters fold and strip cleanly instead of being
		// reversed byte by byte.
		Expect(palindrome.IsPalindrome("aéa")).To(BeTrue())
		Expect(palindrome.IsPalindrome("aéb")).To(BeFalse())
	})
})
