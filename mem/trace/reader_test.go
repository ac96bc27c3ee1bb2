package trace

import (
	"errors"
	"io"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/cachesim/mem/mem"
)

func readAll(r *Reader) ([]Record, error) {
	records := []Record{}
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return records, nil
		}

		if err != nil {
			return records, err
		}

		records = append(records, rec)
	}
}

var _ = Describe("Reader", func() {
	It("should read records", func() {
		r := NewReader(strings.NewReader("l 1f 0\ns 0x20 3\n  l\tABCD 12"))

		records, err := readAll(r)

		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(Equal([]Record{
			{Kind: mem.Load, Address: 0x1f, ExtraCycles: 0},
			{Kind: mem.Store, Address: 0x20, ExtraCycles: 3},
			{Kind: mem.Load, Address: 0xabcd, ExtraCycles: 12},
		}))
		Expect(r.Count()).To(Equal(3))
	})

	It("should pass unknown instructions through", func() {
		r := NewReader(strings.NewReader("x 10 0"))

		rec, err := r.Read()

		Expect(err).NotTo(HaveOccurred())
		Expect(rec.Kind.IsValid()).To(BeFalse())
	})

	It("should return EOF on an empty trace", func() {
		_, err := NewReader(strings.NewReader("  \n")).Read()

		Expect(err).To(Equal(io.EOF))
	})

	DescribeTable("should reject malformed records",
		func(input string, record int) {
			records, err := readAll(NewReader(strings.NewReader(input)))

			var parseErr *ParseError
			Expect(errors.As(err, &parseErr)).To(BeTrue())
			Expect(parseErr.Record).To(Equal(record))
			Expect(records).To(HaveLen(record - 1))
		},
		Entry("bad address", "l 10 0\nl zz 0", 2),
		Entry("bad cycles", "l 10 -1", 1),
		Entry("long instruction", "load 10 0", 1),
		Entry("truncated", "l 10 0\ns 20", 2),
	)

	It("should mark truncated records", func() {
		_, err := NewReader(strings.NewReader("l")).Read()

		Expect(errors.Is(err, ErrTruncated)).To(BeTrue())
	})
})
