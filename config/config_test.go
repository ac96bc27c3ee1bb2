package config

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/cachesim/mem/cache"
)

const twoLevelYAML = `
memory_latency: 100
levels:
  - block_size: 4
    associativity: 1
    total_size: 10
    policy: lru
    hit_latency: 1
  - block_size: 6
    associativity: 3
    total_size: 16
    policy: random
    hit_latency: 10
    seed: 7
`

var _ = Describe("Hierarchy", func() {
	validLevel := func() Level {
		return Level{
			BlockSize:     4,
			Associativity: 1,
			TotalSize:     10,
			Policy:        "fifo",
			HitLatency:    1,
		}
	}

	It("should parse YAML", func() {
		h, err := Parse([]byte(twoLevelYAML))

		Expect(err).NotTo(HaveOccurred())
		Expect(h.MemoryLatency).To(Equal(uint64(100)))
		Expect(h.Levels).To(HaveLen(2))
		Expect(h.Levels[1].Seed).NotTo(BeNil())
		Expect(*h.Levels[1].Seed).To(Equal(uint64(7)))

		policy, err := h.Levels[1].ReplacementPolicy()
		Expect(err).NotTo(HaveOccurred())
		Expect(policy).To(Equal(cache.Random))
	})

	It("should load from a file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "h.yaml")
		Expect(os.WriteFile(path, []byte(twoLevelYAML), 0o600)).To(Succeed())

		h, err := Load(path)

		Expect(err).NotTo(HaveOccurred())
		Expect(h.Levels[0].Policy).To(Equal("lru"))
	})

	It("should round-trip through YAML", func() {
		h := Hierarchy{MemoryLatency: 50, Levels: []Level{validLevel()}}

		data, err := h.Marshal()
		Expect(err).NotTo(HaveOccurred())

		back, err := Parse(data)
		Expect(err).NotTo(HaveOccurred())
		Expect(back).To(Equal(h))
	})

	It("should require a level", func() {
		Expect(Hierarchy{MemoryLatency: 1}.Validate()).To(HaveOccurred())
	})

	It("should reject a cache smaller than one set", func() {
		l := validLevel()
		l.TotalSize = 4

		Expect(l.Validate()).To(MatchError(ContainSubstring("smaller than")))
	})

	It("should accept a cache of exactly one set", func() {
		l := validLevel()
		l.TotalSize = 5

		Expect(l.Validate()).To(Succeed())
	})

	It("should reject caches beyond 2^31 bytes", func() {
		l := validLevel()
		l.TotalSize = 32

		Expect(l.Validate()).To(MatchError(ContainSubstring("exceeds")))
	})

	It("should report every broken level", func() {
		bad := validLevel()
		bad.Policy = "mru"
		h := Hierarchy{Levels: []Level{validLevel(), bad, bad}}

		err := h.Validate()

		Expect(err).To(MatchError(ContainSubstring("L2")))
		Expect(err).To(MatchError(ContainSubstring("L3")))
		Expect(err).NotTo(MatchError(ContainSubstring("L1")))
	})
})

var _ = Describe("Environment", func() {
	It("should load .env files and ignore missing ones", func() {
		dir := GinkgoT().TempDir()
		path := filepath.Join(dir, "test.env")
		Expect(os.WriteFile(path, []byte("CACHESIM_TEST_DB=results\nCACHESIM_TEST_PORT=8080\n"), 0o600)).To(Succeed())
		DeferCleanup(func() {
			os.Unsetenv("CACHESIM_TEST_DB")
			os.Unsetenv("CACHESIM_TEST_PORT")
		})

		Expect(LoadEnv(path, filepath.Join(dir, "missing.env"))).To(Succeed())

		Expect(EnvString("CACHESIM_TEST_DB", "x")).To(Equal("results"))
		Expect(EnvInt("CACHESIM_TEST_PORT", 0)).To(Equal(8080))
	})

	It("should fall back to defaults", func() {
		Expect(EnvString("CACHESIM_TEST_UNSET", "def")).To(Equal("def"))
		Expect(EnvInt("CACHESIM_TEST_UNSET", 3)).To(Equal(3))
	})
})
