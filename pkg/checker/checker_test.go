package checker_test

import (
	"github.com/arya-analytics/claims/pkg/checker"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Checker", func() {
	Describe("SubClaimsDirectChildren", func() {
		claims := []string{
			"read:clients.this-guy.stuff",
			"read:clients.this-guy.wooa",
			"read:clients.this-guy.wooa.and.another",
			"read:clients.this-guy.wat.is.this",
		}

		It("should match scenario 7 from the spec literally, only_direct=true", func() {
			got := checker.SubClaimsDirectChildren("read:clients.this-guy", claims, true)
			Expect(got).To(Equal([]string{"stuff", "wooa"}))
		})

		It("should match scenario 7 from the spec literally, only_direct=false", func() {
			got := checker.SubClaimsDirectChildren("read:clients.this-guy", claims, false)
			Expect(got).To(Equal([]string{"stuff", "wat", "wooa"}))
		})

		It("should return the All sentinel when the query is itself covered", func() {
			got := checker.SubClaimsDirectChildren("read:clients.this-guy", []string{"read:clients.*"}, false)
			Expect(got).To(Equal([]string{checker.All}))
		})
	})

	Describe("QueryClaims", func() {
		It("should treat an ancestor rule as a match", func() {
			Expect(checker.QueryClaims("read:a.b.c", []string{"read:a.b"})).To(BeTrue())
		})

		It("should treat a trailing wildcard as matching any descendant", func() {
			Expect(checker.QueryClaims("read:a.b.c.d", []string{"read:a.b.*"})).To(BeTrue())
		})

		It("should not match a descendant rule against a shallower query", func() {
			Expect(checker.QueryClaims("read:a", []string{"read:a.b"})).To(BeFalse())
		})

		It("should not match a different verb", func() {
			Expect(checker.QueryClaims("write:a.b", []string{"read:a.b"})).To(BeFalse())
		})
	})

	Describe("ExactOrAncestor", func() {
		It("should match an exact global claim", func() {
			Expect(checker.ExactOrAncestor("read:a.b", []string{"read:*"})).To(BeTrue())
		})

		It("should match an exact claim", func() {
			Expect(checker.ExactOrAncestor("read:a.b", []string{"read:a.b"})).To(BeTrue())
		})

		It("should match a prefix claim with a wildcard suffix", func() {
			Expect(checker.ExactOrAncestor("read:a.b.c", []string{"read:a.b.*"})).To(BeTrue())
		})

		It("should not match an unrelated claim", func() {
			Expect(checker.ExactOrAncestor("read:a.b.c", []string{"read:x.y"})).To(BeFalse())
		})
	})

	Describe("SubClaims", func() {
		It("should return the All sentinel when covered", func() {
			Expect(checker.SubClaims("read:a", []string{"read:*"})).To(Equal([]string{checker.All}))
		})

		It("should return matching deeper claims otherwise", func() {
			got := checker.SubClaims("read:a", []string{"read:a.b", "read:a.c", "read:x.y"})
			Expect(got).To(Equal([]string{"read:a.b", "read:a.c"}))
		})
	})
})
