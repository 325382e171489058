package analysis_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/mock/gomock"

	"github.com/arxeiss/deadflow/analysis"
	"github.com/arxeiss/deadflow/fsutil/mocks"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gstruct"
)

const projectOutput = "Found 4 unused Flow types.\n\n" +
	"testdata/project/app/main.js\n" +
	"  Foo:2:13:import type Foo from './foo';\n" +
	"  B:3:18:import type { A, B } from './types';\n" +
	"  Unused:6:6:type Unused = {a: A};\n\n" +
	"testdata/project/lib/util.js\n" +
	"  Helper:2:6:type Helper = number;\n\n"

var _ = Describe("Runner", func() {
	var (
		stdOut *bytes.Buffer
		stdErr *bytes.Buffer
	)

	BeforeEach(func() {
		stdOut = bytes.NewBuffer(nil)
		stdErr = bytes.NewBuffer(nil)
	})

	It("fails on no path", func() {
		ctx := context.Background()
		r := analysis.New(stdOut, stdErr, "")
		err := r.Run(ctx)
		Expect(err).To(MatchError("no path provided"))
	})

	It("fails on missing root", func() {
		ctx := context.Background()
		r := analysis.New(stdOut, stdErr, "testdata/missing")
		err := r.Run(ctx)
		Expect(err).To(MatchError(ContainSubstring("failed to list files in 'testdata/missing'")))
		Expect(err).To(MatchError(os.ErrNotExist))
	})

	It("fails on invalid configuration", func() {
		ctx := context.Background()
		r := analysis.New(stdOut, stdErr, "testdata/project")
		r.Config.Marker = ""
		err := r.Run(ctx)
		Expect(err).To(MatchError(HavePrefix("invalid configuration: ")))
	})

	It("reports unused types of marked files sorted by path", func() {
		ctx := context.Background()
		r := analysis.New(stdOut, stdErr, "testdata/project")
		Expect(r.Run(ctx)).To(Succeed())
		Expect(stdOut.String()).To(Equal(projectOutput))
		Expect(stdErr.String()).To(BeEmpty())
	})

	It("keeps progress output off non-terminal writers", func() {
		ctx := context.Background()
		r := analysis.New(stdOut, stdErr, "testdata/project")
		r.ProgressFlag = true
		Expect(r.Run(ctx)).To(Succeed())
		Expect(stdOut.String()).To(Equal(projectOutput))
		Expect(stdErr.String()).To(BeEmpty())
	})

	It("uses singular form for a single finding", func() {
		ctx := context.Background()
		r := analysis.New(stdOut, stdErr, "testdata/project/lib")
		Expect(r.Run(ctx)).To(Succeed())
		Expect(stdOut.String()).To(Equal("Found 1 unused Flow type.\n\n" +
			"testdata/project/lib/util.js\n" +
			"  Helper:2:6:type Helper = number;\n\n"))
	})

	It("prints only the summary when nothing is unused", func() {
		ctx := context.Background()
		r := analysis.New(stdOut, stdErr, "testdata/project")
		r.Config.Marker = "@nothing-has-this"
		Expect(r.Run(ctx)).To(Succeed())
		Expect(stdOut.String()).To(Equal("Found 0 unused Flow types.\n\n"))
	})

	DescribeTable("Verify configuration",
		func(setup func(r *analysis.Runner), expectedNames []string) {
			ctx := context.Background()
			r := analysis.New(stdOut, stdErr, "testdata/project")
			setup(r)
			files, err := r.Lint(ctx)
			Expect(err).To(Succeed())

			names := []string{}
			for _, f := range files {
				for _, t := range f.Types {
					names = append(names, t.Name)
				}
			}
			Expect(names).To(Equal(expectedNames))
		},
		Entry("Defaults", func(*analysis.Runner) {}, []string{"Foo", "B", "Unused", "Helper"}),
		Entry("No excludes", func(r *analysis.Runner) {
			r.Config.Exclude = nil
		}, []string{"MockOnly", "TestOnly", "Foo", "B", "Unused", "Helper", "Vendored"}),
		Entry("Extra extension", func(r *analysis.Runner) {
			r.Config.Extensions = []string{".js", ".css"}
		}, []string{"Foo", "B", "Unused", "Css", "Helper"}),
		Entry("Single worker", func(r *analysis.Runner) {
			r.Config.Concurrency = 1
		}, []string{"Foo", "B", "Unused", "Helper"}),
	)

	It("returns structured results", func() {
		ctx := context.Background()
		r := analysis.New(stdOut, stdErr, "testdata/project")
		files, err := r.Lint(ctx)
		Expect(err).To(Succeed())

		Expect(files).To(HaveLen(2))
		Expect(files[1]).To(PointTo(MatchAllFields(Fields{
			"Path": Equal("testdata/project/lib/util.js"),
			"Types": ConsistOf(PointTo(MatchAllFields(Fields{
				"Name": Equal("Helper"),
				"Position": MatchAllFields(Fields{
					"File": Equal("testdata/project/lib/util.js"),
					"Line": Equal(2),
					"Col":  Equal(6),
				}),
				"Line": Equal("type Helper = number;"),
			}))),
		})))
	})

	It("Handles JSON output", func() {
		ctx := context.Background()
		r := analysis.New(stdOut, stdErr, "testdata/project")
		r.JSONFlag = true
		Expect(r.Run(ctx)).To(Succeed())

		main := "testdata/project/app/main.js"
		util := "testdata/project/lib/util.js"
		expected := []*analysis.File{
			{
				Path: main,
				Types: []*analysis.UnusedType{
					{Name: "Foo", Position: analysis.Position{File: main, Line: 2, Col: 13}, Line: "import type Foo from './foo';"},
					{Name: "B", Position: analysis.Position{File: main, Line: 3, Col: 18}, Line: "import type { A, B } from './types';"},
					{Name: "Unused", Position: analysis.Position{File: main, Line: 6, Col: 6}, Line: "type Unused = {a: A};"},
				},
			},
			{
				Path: util,
				Types: []*analysis.UnusedType{
					{Name: "Helper", Position: analysis.Position{File: util, Line: 2, Col: 6}, Line: "type Helper = number;"},
				},
			},
		}

		expectedOut, err := json.MarshalIndent(expected, "", "\t")
		Expect(err).To(Succeed())
		Expect(stdOut.Bytes()).To(MatchJSON(expectedOut))
	})

	It("Handles JSON output without findings", func() {
		ctx := context.Background()
		r := analysis.New(stdOut, stdErr, "testdata/project/app/__tests__")
		r.JSONFlag = true
		r.Config.Exclude = []string{"node_modules"}
		r.Config.Marker = "@nothing-has-this"
		Expect(r.Run(ctx)).To(Succeed())
		Expect(stdOut.String()).To(MatchJSON("[]"))
	})

	It("Verify debug output", func() {
		ctx := context.Background()
		r := analysis.New(stdOut, stdErr, "testdata/project")
		r.DebugFlag = true
		Expect(r.Run(ctx)).To(Succeed())

		Expect(stdErr.String()).To(HavePrefix(
			"level=DEBUG msg=\"Start scanning root\" root=testdata/project\n" +
				"level=DEBUG msg=\"Discovered candidate files\" count=4\n",
		))
		Expect(stdErr.String()).To(ContainSubstring(
			"level=DEBUG msg=\"Linted file\" path=testdata/project/app/main.js unused=3\n",
		))
		Expect(stdErr.String()).To(ContainSubstring("level=DEBUG msg=\"Linting finished\" duration="))
	})

	It("aborts the whole run on a read failure", func() {
		ctx := context.Background()
		errBoom := errors.New("boom")

		ctrl := gomock.NewController(GinkgoT())
		fsys := mocks.NewMockFS(ctrl)
		fsys.EXPECT().WalkDir("testdata/project", gomock.Any()).DoAndReturn(filepath.WalkDir)
		fsys.EXPECT().ReadFile(gomock.Any()).DoAndReturn(func(path string) ([]byte, error) {
			if strings.HasSuffix(path, "util.js") {
				return nil, errBoom
			}
			return os.ReadFile(path)
		}).AnyTimes()

		r := analysis.New(stdOut, stdErr, "testdata/project").WithFS(fsys)
		err := r.Run(ctx)
		Expect(err).To(MatchError(errBoom))
		Expect(err).To(MatchError(ContainSubstring("failed to read 'testdata/project/lib/util.js'")))
		Expect(stdOut.String()).To(BeEmpty())
	})

	It("stops on a cancelled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		r := analysis.New(stdOut, stdErr, "testdata/project")
		Expect(r.Run(ctx)).To(MatchError(context.Canceled))
	})
})
