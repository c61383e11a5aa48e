package expect_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/fakeasm/cpu"
	"github.com/ezrec/fakeasm/expect"
)

var _ = Describe("Check", func() {
	var (
		regs cpu.RegisterFile
		zero bool
	)

	BeforeEach(func() {
		regs = cpu.RegisterFile{2, -1, 0, 0, 0, 0, 0, 7}
		zero = false
	})

	Context("Boolean expressions", func() {
		It("should see the registers by name", func() {
			ok, err := expect.Check("R0 == 2 and R1 == -1 and R7 == 7", regs, zero)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
		})

		It("should see the registers as a list", func() {
			ok, err := expect.Check("regs[7] == 7 and len(regs) == 8", regs, zero)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
		})

		It("should see the zero flag", func() {
			ok, err := expect.Check("not Z", regs, zero)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())

			ok, err = expect.Check("Z", regs, true)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
		})

		It("should report a failed expectation", func() {
			ok, err := expect.Check("R0 == 3", regs, zero)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
		})
	})

	Context("Invalid expressions", func() {
		It("should reject non-boolean results", func() {
			_, err := expect.Check("R0 + 1", regs, zero)
			Expect(err).To(MatchError(expect.ErrNotBool))
		})

		It("should reject unknown names", func() {
			_, err := expect.Check("R8 == 0", regs, zero)
			Expect(err).To(HaveOccurred())

			var expr *expect.ErrExpression
			Expect(err).To(BeAssignableToTypeOf(expr))
		})

		It("should reject syntax errors", func() {
			_, err := expect.Check("R0 ==", regs, zero)
			Expect(err).To(HaveOccurred())
		})

		It("should not allow the registers to be modified", func() {
			_, err := expect.Check("regs.append(1)", regs, zero)
			Expect(err).To(HaveOccurred())
		})
	})

	Context("After a run", func() {
		It("should check the CPU state", func() {
			prog, err := cpu.Load("ZERO R0\nINC R0\nINC R0")
			Expect(err).NotTo(HaveOccurred())

			cp := cpu.NewCpu(prog)
			_, err = cp.Run()
			Expect(err).NotTo(HaveOccurred())

			ok, err := expect.CheckCpu("R0 == 2 and not Z", cp)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
		})
	})
})
