package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/guptarohit/asciigraph"
	"github.com/max-sn/robotics-foundation/internal/backend"
	"github.com/max-sn/robotics-foundation/internal/config"
	"github.com/max-sn/robotics-foundation/internal/export"
	"github.com/max-sn/robotics-foundation/internal/logging"
	"github.com/max-sn/robotics-foundation/internal/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	backend    string
	configFile string
	logLevel   string
	precision  int
	plain      bool
	json       bool

	cfg *config.Config
	be  backend.Backend
	log *zap.Logger
}

func main() {
	opts := &options{}
	rootCmd := newRootCmd(opts)
	if err := rootCmd.Execute(); err != nil {
		if opts.log != nil {
			opts.log.Error("command failed", zap.String("command", commandName(rootCmd)), zap.Error(err))
			_ = opts.log.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func commandName(root *cobra.Command) string {
	cmd, _, err := root.Find(os.Args[1:])
	if err != nil || cmd == nil {
		return root.Name()
	}
	return cmd.Name()
}

func newRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rigidmotion",
		Short:         "exponential coordinates of rigid-body motion",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.backend, "backend", config.DefaultBackend, "scalar backend (num or sym)")
	pf.StringVar(&opts.configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "log level")
	pf.IntVar(&opts.precision, "precision", config.DefaultPrecision, "significant digits of numeric output")
	pf.BoolVar(&opts.plain, "plain", false, "no borders or colors")
	pf.BoolVar(&opts.json, "json", false, "print results as JSON")

	rootCmd.AddCommand(
		logSO3Cmd(opts),
		expSO3Cmd(opts),
		logSE3Cmd(opts),
		expSE3Cmd(opts),
		inverseCmd(opts),
		adjointCmd(opts),
		adCmd(opts),
		rotCmd(opts),
		transCmd(opts),
		manipCmd(opts),
		traceCmd(opts),
		presetsCmd(opts),
	)
	return rootCmd
}

// setup loads the config file and lets explicitly set flags override it.
func (o *options) setup(cmd *cobra.Command) error {
	cfg := config.DefaultConfig()
	if o.configFile != "" {
		loaded, err := config.Load(o.configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend = o.backend
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("precision") {
		cfg.Precision = o.precision
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	be, err := backend.Get(cfg.Backend, cfg)
	if err != nil {
		return err
	}

	render.Plain = o.plain
	o.cfg, o.be, o.log = cfg, be, log
	log.Debug("configured",
		zap.String("backend", cfg.Backend),
		zap.Int("precision", cfg.Precision),
		zap.String("config", o.configFile),
	)
	return nil
}

func (o *options) print(cmd *cobra.Command, blocks ...string) {
	for _, b := range blocks {
		fmt.Fprintln(cmd.OutOrStdout(), b)
	}
}

// emit writes v as JSON under --json and the rendered blocks otherwise.
func (o *options) emit(cmd *cobra.Command, v any, blocks ...string) error {
	if o.json {
		return export.WriteJSON(cmd.OutOrStdout(), v)
	}
	o.print(cmd, blocks...)
	return nil
}

func logSO3Cmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "log-so3 <R>",
		Short: "axis and angle of a rotation matrix",
		Long:  `Rows are separated by ";" and entries by ",", e.g. "0,-1,0;1,0,0;0,0,1".`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			R, err := backend.ParseMatrix(args[0])
			if err != nil {
				return err
			}
			r, err := opts.be.LogSO3(R)
			if err != nil {
				return err
			}
			blocks := []string{
				render.Fields("log SO(3)",
					[2]string{"angle", r.Angle},
					[2]string{"defined", strconv.FormatBool(r.Defined)},
				),
				render.Vector("axis", r.Axis),
				render.Vector("rotation vector", r.Vector),
			}
			if !r.Defined {
				blocks = append(blocks, render.Note("axis undefined: no rotation"))
			}
			return opts.emit(cmd, r, blocks...)
		},
	}
}

func expSO3Cmd(opts *options) *cobra.Command {
	var axis, angle string
	cmd := &cobra.Command{
		Use:   "exp-so3",
		Short: "rotation matrix from an axis and angle",
		Long:  "Without --angle the axis is read as a rotation vector whose norm is the angle.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := backend.ParseVector(axis)
			if err != nil {
				return err
			}
			R, err := opts.be.ExpSO3(w, angle)
			if err != nil {
				return err
			}
			return opts.emit(cmd, R, render.Matrix("R", R))
		},
	}
	cmd.Flags().StringVar(&axis, "axis", "", "rotation axis or rotation vector, e.g. 0,0,1")
	cmd.Flags().StringVar(&angle, "angle", "", "rotation angle, e.g. pi/3")
	_ = cmd.MarkFlagRequired("axis")
	return cmd
}

func logSE3Cmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "log-se3 <T>",
		Short: "screw axis and distance of a homogeneous transform",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			T, err := backend.ParseMatrix(args[0])
			if err != nil {
				return err
			}
			s, err := opts.be.LogSE3(T)
			if err != nil {
				return err
			}
			blocks := []string{
				render.Fields("log SE(3)",
					[2]string{"theta", s.Theta},
					[2]string{"defined", strconv.FormatBool(s.Defined)},
				),
				render.Vector("screw axis", s.Axis),
				render.Vector("twist", s.Twist),
			}
			if !s.Defined {
				blocks = append(blocks, render.Note("screw axis undefined: no motion"))
			}
			return opts.emit(cmd, s, blocks...)
		},
	}
}

func expSE3Cmd(opts *options) *cobra.Command {
	var twist, theta string
	cmd := &cobra.Command{
		Use:   "exp-se3",
		Short: "homogeneous transform from a screw axis and distance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			V, err := backend.ParseVector(twist)
			if err != nil {
				return err
			}
			T, err := opts.be.ExpSE3(V, theta)
			if err != nil {
				return err
			}
			return opts.emit(cmd, T, render.Matrix("T", T))
		},
	}
	cmd.Flags().StringVar(&twist, "twist", "", "screw axis (w, v), e.g. 0,0,1,0,-1,0")
	cmd.Flags().StringVar(&theta, "theta", "1", "distance along the screw")
	_ = cmd.MarkFlagRequired("twist")
	return cmd
}

// matrixCmd covers the commands that take one matrix and print one matrix.
func matrixCmd(use, short, title string, run func(backend.Backend, [][]string) (backend.Matrix, error), opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := backend.ParseMatrix(args[0])
			if err != nil {
				return err
			}
			out, err := run(opts.be, in)
			if err != nil {
				return err
			}
			return opts.emit(cmd, out, render.Matrix(title, out))
		},
	}
}

func inverseCmd(opts *options) *cobra.Command {
	return matrixCmd("inverse <T>", "inverse of a homogeneous transform", "T⁻¹",
		backend.Backend.Inverse, opts)
}

func adjointCmd(opts *options) *cobra.Command {
	return matrixCmd("adjoint <T>", "6x6 adjoint representation of a transform", "Ad(T)",
		backend.Backend.Adjoint, opts)
}

func adCmd(opts *options) *cobra.Command {
	var twist string
	cmd := &cobra.Command{
		Use:   "ad",
		Short: "6x6 Lie bracket matrix of a twist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			V, err := backend.ParseVector(twist)
			if err != nil {
				return err
			}
			m, err := opts.be.LittleAdjoint(V)
			if err != nil {
				return err
			}
			return opts.emit(cmd, m, render.Matrix("ad(V)", m))
		},
	}
	cmd.Flags().StringVar(&twist, "twist", "", "twist (w, v)")
	_ = cmd.MarkFlagRequired("twist")
	return cmd
}

func rotCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:       "rot <x|y|z> <angle>",
		Short:     "homogeneous rotation about a principal axis",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"x", "y", "z"},
		RunE: func(cmd *cobra.Command, args []string) error {
			T, err := opts.be.Rot(args[0], args[1])
			if err != nil {
				return err
			}
			return opts.emit(cmd, T, render.Matrix("Rot"+args[0]+"("+args[1]+")", T))
		},
	}
}

func transCmd(opts *options) *cobra.Command {
	var vec, x, y, z string
	cmd := &cobra.Command{
		Use:   "trans",
		Short: "homogeneous translation",
		Long:  "--vec takes precedence over --x, --y and --z.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := []string{x, y, z}
			if vec != "" {
				v, err := backend.ParseVector(vec)
				if err != nil {
					return err
				}
				p = v
			}
			T, err := opts.be.Trans(p)
			if err != nil {
				return err
			}
			return opts.emit(cmd, T, render.Matrix("Trans", T))
		},
	}
	cmd.Flags().StringVar(&vec, "vec", "", "translation vector, e.g. 1,2,3")
	cmd.Flags().StringVar(&x, "x", "0", "x offset")
	cmd.Flags().StringVar(&y, "y", "0", "y offset")
	cmd.Flags().StringVar(&z, "z", "0", "z offset")
	return cmd
}

func manipCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "manip <J>",
		Short: "manipulability ellipsoid of a Jacobian",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			J, err := backend.ParseMatrix(args[0])
			if err != nil {
				return err
			}
			axes, cond, err := opts.be.Manipulability(J)
			if err != nil {
				return err
			}
			return opts.emit(cmd, backend.Ellipsoid{Axes: axes, Condition: cond},
				render.Matrix("principal axes (columns)", axes),
				render.Fields("", [2]string{"condition", cond}),
			)
		},
	}
}

func traceCmd(opts *options) *cobra.Command {
	var twist, theta, out string
	var samples int
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "plot the translation of exp([V]θ) as θ goes from 0 to --theta",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			V, err := backend.ParseVector(twist)
			if err != nil {
				return err
			}
			n := opts.cfg.Trace.Samples
			if cmd.Flags().Changed("samples") {
				n = samples
			}
			tr, err := opts.be.Trace(V, theta, n)
			if err != nil {
				return err
			}
			opts.log.Debug("traced", zap.Int("samples", n), zap.String("theta", theta))

			data := export.NewTrace(opts.be.Name(), V, theta, tr)
			if out != "" {
				if err := export.SaveJSON(out, data); err != nil {
					return err
				}
				opts.log.Info("trace saved", zap.String("path", out), zap.Int("samples", n))
			}

			plot := []asciigraph.Option{
				asciigraph.Height(opts.cfg.Trace.Height),
				asciigraph.Width(opts.cfg.Trace.Width),
				asciigraph.Caption(fmt.Sprintf("p(θ) = (x, y, z) for θ ∈ [0, %s]", theta)),
			}
			if !opts.plain {
				plot = append(plot, asciigraph.SeriesColors(asciigraph.Red, asciigraph.Green, asciigraph.Blue))
			}
			graph := asciigraph.PlotMany(tr[:], plot...)
			return opts.emit(cmd, data, graph)
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "also save the samples as JSON")
	cmd.Flags().StringVar(&twist, "twist", "", "screw axis (w, v)")
	cmd.Flags().StringVar(&theta, "theta", "1", "final distance along the screw")
	cmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "number of samples")
	_ = cmd.MarkFlagRequired("twist")
	return cmd
}

func presetsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "presets [name]",
		Short: "list named poses or show one as a transform",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				var pairs [][2]string
				poses := make(map[string]*config.Pose)
				for _, name := range poseNames(opts.cfg) {
					poses[name] = opts.cfg.Pose(name)
					pairs = append(pairs, [2]string{name, poses[name].Description})
				}
				return opts.emit(cmd, poses, render.Fields("poses", pairs...))
			}

			p := opts.cfg.Pose(args[0])
			if p == nil {
				return fmt.Errorf("unknown pose %q (run presets to list them)", args[0])
			}
			T, err := opts.be.Pose(p)
			if err != nil {
				return err
			}
			return opts.emit(cmd, T, render.Matrix(args[0], T))
		},
	}
}

// poseNames merges the presets with the poses of the config file.
func poseNames(cfg *config.Config) []string {
	names := config.ListPresets()
	for name := range cfg.Poses {
		if config.GetPreset(name) == nil {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
