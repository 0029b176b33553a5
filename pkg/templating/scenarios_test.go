package templating_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/afero"

	"code.cestus.io/libs/scaffold/pkg/filesystem"
	"code.cestus.io/libs/scaffold/pkg/locations"
	"code.cestus.io/libs/scaffold/pkg/rootdir"
	"code.cestus.io/libs/scaffold/pkg/templating"
)

var _ = Describe("Locator", func() {
	var (
		mem     afero.Fs
		locator *templating.Locator
	)

	BeforeEach(func() {
		mem = afero.NewMemMapFs()
		fs := filesystem.NewAfero(mem)
		locator = templating.NewLocator(
			templating.WithFileSystem(fs),
			templating.WithRootLocator(rootdir.NewMarkerLocator(fs, rootdir.WithMarkers(".marker"))),
			templating.WithInstallationPathProvider(locations.Fixed("/opt/tool")),
			templating.WithConfigDirName(".config"),
		)
	})

	write := func(path string) {
		Expect(afero.WriteFile(mem, path, []byte("content"), 0644)).To(Succeed())
	}

	Context("with only built-in templates", func() {
		BeforeEach(func() {
			write("/opt/tool/Templates/a.txt")
			Expect(mem.MkdirAll("/home/user/proj", 0755)).To(Succeed())
		})

		It("finds the built-in directory", func() {
			Expect(locator.LocateBuiltin()).To(Equal(locations.Found("/opt/tool/Templates")))
		})

		It("lists the built-in templates", func() {
			Expect(locator.TemplateDirectories("/home/user/proj")).To(Equal([]string{"/opt/tool/Templates/a.txt"}))
		})
	})

	Context("with only custom templates", func() {
		BeforeEach(func() {
			write("/home/user/proj/.marker")
			write("/home/user/proj/.config/Templates/b.txt")
			Expect(mem.MkdirAll("/home/user/proj/sub", 0755)).To(Succeed())
		})

		It("does not find a built-in directory", func() {
			Expect(locator.LocateBuiltin().IsFound()).To(BeFalse())
		})

		It("lists the custom templates from a nested directory", func() {
			Expect(locator.TemplateDirectories("/home/user/proj/sub")).To(Equal([]string{"/home/user/proj/.config/Templates/b.txt"}))
		})
	})

	Context("when the custom directory is missing", func() {
		BeforeEach(func() {
			write("/home/user/proj/.marker")
		})

		It("computes the custom path but does not report it", func() {
			Expect(locator.Locate("/home/user/proj").Path()).To(Equal("/home/user/proj/.config/Templates"))
			Expect(locator.LocateCustom("/home/user/proj").IsFound()).To(BeFalse())
		})

		It("lists nothing", func() {
			Expect(locator.TemplateDirectories("/home/user/proj")).To(BeEmpty())
		})
	})

	Context("outside any project", func() {
		It("locates nothing", func() {
			Expect(locator.Locate("/tmp/scratch").IsFound()).To(BeFalse())
			Expect(locator.LocateCustom("/tmp/scratch").IsFound()).To(BeFalse())
		})
	})

	Context("when a located directory cannot be listed", func() {
		BeforeEach(func() {
			write("/opt/tool/Templates")
		})

		It("returns a filesystem error", func() {
			_, err := locator.TemplateDirectories("/home/user/proj")

			var fsErr *filesystem.FilesystemError
			Expect(err).To(MatchError(filesystem.ErrNotDirectory))
			Expect(errors.As(err, &fsErr)).To(BeTrue())
			Expect(fsErr.Path).To(Equal("/opt/tool/Templates"))
		})
	})
})
