package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/cachesim/config"
	"github.com/sarchlab/cachesim/datarecording"
	"github.com/sarchlab/cachesim/simulation"
)

var _ = Describe("Inspect", func() {
	It("should list the recorded runs with their levels", func() {
		dbName := filepath.Join(GinkgoT().TempDir(), "runs")
		dataRecorder := datarecording.New(dbName)

		s, err := simulation.MakeBuilder().
			WithHierarchy(config.Hierarchy{
				MemoryLatency: 100,
				Levels: []config.Level{{
					BlockSize: 4, Associativity: 1, TotalSize: 5,
					Policy: "lru", HitLatency: 1,
				}},
			}).
			WithRecorder(simulation.NewRecorder(dataRecorder)).
			Build()
		Expect(err).NotTo(HaveOccurred())

		_, err = s.Run("warmup", strings.NewReader("l 0 0\n"))
		Expect(err).NotTo(HaveOccurred())
		_, err = s.Run("warmup", strings.NewReader("l 0 0\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(dataRecorder.Close()).To(Succeed())

		reader, err := datarecording.NewReader(dbName + ".sqlite3")
		Expect(err).NotTo(HaveOccurred())
		defer reader.Close()

		out := &bytes.Buffer{}
		Expect(listRuns(context.Background(), reader, out, 0)).To(Succeed())

		Expect(out.String()).To(ContainSubstring("2 run(s) recorded"))
		Expect(out.String()).To(ContainSubstring("cycles=101"))
		Expect(out.String()).To(ContainSubstring("warm=true"))
		Expect(out.String()).To(ContainSubstring("L1   hit ratio 1.0000"))
	})
})
