package claim_test

import (
	"encoding/json"

	"github.com/arya-analytics/claims/pkg/claim"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Claim", func() {
	Describe("Parse", func() {
		It("should parse a global claim", func() {
			c, err := claim.Parse("do:*")
			Expect(err).ToNot(HaveOccurred())
			Expect(c.Global()).To(BeTrue())
			Expect(c.Verb()).To(Equal(claim.Verb("do")))
			Expect(c.CleanString()).To(Equal("do:*"))
		})

		It("should parse a scoped claim", func() {
			c, err := claim.Parse("read:some.stuff")
			Expect(err).ToNot(HaveOccurred())
			Expect(c.Global()).To(BeFalse())
			r, ok := c.Resource()
			Expect(ok).To(BeTrue())
			Expect(r).To(Equal("some.stuff"))
			Expect(c.ResourceParts()).To(Equal([]string{"some", "stuff"}))
		})

		It("should strip a trailing wildcard and normalise to the same claim", func() {
			a, err := claim.Parse("read:a.b.*")
			Expect(err).ToNot(HaveOccurred())
			b, err := claim.Parse("read:a.b")
			Expect(err).ToNot(HaveOccurred())
			Expect(a.Equal(b)).To(BeTrue())
			Expect(a.CleanString()).To(Equal("read:a.b"))
			Expect(b.CleanString()).To(Equal("read:a.b"))
		})

		DescribeTable("invalid claim strings",
			func(s string) {
				_, err := claim.Parse(s)
				Expect(err).To(HaveOccurred())
				Expect(err).To(MatchError(claim.ErrInvalidClaim))
			},
			Entry("empty", ""),
			Entry("no colon", "read"),
			Entry("empty resource", "read:"),
			Entry("wildcard in the middle", "read:a.*.b"),
			Entry("double wildcard", "read:*.*"),
			Entry("resource ends in a bare dot", "read:a."),
			Entry("empty segment", "read:a..b"),
			Entry("wildcard verb", "*:a.b"),
		)

		It("should round-trip through its own clean string", func() {
			c, err := claim.Parse("read:a.b.c")
			Expect(err).ToNot(HaveOccurred())
			again, err := claim.Parse(c.CleanString())
			Expect(err).ToNot(HaveOccurred())
			Expect(again.Equal(c)).To(BeTrue())
		})
	})

	Describe("global ⇔ clean_string ends with \":*\"", func() {
		It("should hold for a global claim", func() {
			c := claim.MustParse("do:*")
			Expect(c.Global()).To(BeTrue())
			Expect(c.CleanString()).To(HaveSuffix(":*"))
		})

		It("should hold for a scoped claim", func() {
			c := claim.MustParse("read:a.b")
			Expect(c.Global()).To(BeFalse())
			Expect(c.CleanString()).ToNot(HaveSuffix(":*"))
		})
	})

	Describe("MarshalJSON", func() {
		It("should encode as the clean string", func() {
			c := claim.MustParse("read:a.b.*")
			b, err := json.Marshal(c)
			Expect(err).ToNot(HaveOccurred())
			Expect(string(b)).To(Equal(`"read:a.b"`))
		})
	})

	Describe("relations", func() {
		var c claim.Claim
		BeforeEach(func() {
			c = claim.MustParse("read:some.stuff.nested")
		})

		It("should match scenario 1 from the spec literally", func() {
			what, _ := claim.NewQuery("read", "what")
			_, ok := c.DirectDescendant(what)
			Expect(ok).To(BeFalse())

			some, _ := claim.NewQuery("read", "some")
			seg, ok := c.DirectDescendant(some)
			Expect(ok).To(BeTrue())
			Expect(seg).To(Equal("stuff"))

			someStuff, _ := claim.NewQuery("read", "some.stuff")
			seg, ok = c.DirectDescendant(someStuff)
			Expect(ok).To(BeTrue())
			Expect(seg).To(Equal("nested"))

			seg, ok = c.DirectChild(someStuff)
			Expect(ok).To(BeTrue())
			Expect(seg).To(Equal("nested"))

			_, ok = c.DirectChild(some)
			Expect(ok).To(BeFalse())
		})

		It("should satisfy direct_child ⇒ direct_descendant", func() {
			q, _ := claim.NewQuery("read", "some.stuff")
			Expect(c.DirectChildOK(q)).To(BeTrue())
			Expect(c.DirectDescendantOK(q)).To(BeTrue())
		})

		It("should satisfy exact ⇒ query", func() {
			q, _ := claim.NewQuery("read", "some.stuff.nested")
			Expect(c.Exact(q)).To(BeTrue())
			Expect(c.Query(q)).To(BeTrue())
		})

		It("should reject a query for a different verb", func() {
			q, _ := claim.NewQuery("write", "some.stuff.nested")
			Expect(c.Query(q)).To(BeFalse())
		})
	})

	Describe("global claim matching", func() {
		It("should match any resource and the absent resource under its verb", func() {
			g := claim.MustParse("read:*")
			withResource, _ := claim.NewQuery("read", "anything.at.all")
			noResource, _ := claim.GlobalQuery("read")
			Expect(g.Query(withResource)).To(BeTrue())
			Expect(g.Query(noResource)).To(BeTrue())
		})

		It("should never answer direct_child or direct_descendant", func() {
			g := claim.MustParse("read:*")
			q, _ := claim.NewQuery("read", "anything")
			Expect(g.DirectChildOK(q)).To(BeFalse())
			Expect(g.DirectDescendantOK(q)).To(BeFalse())
		})
	})
})
