package nucstat

import (
	"fmt"
	"io"
)

// Args is what the command line gives us.
type Args struct {
	Fnames    []string
	PlotFname string    // only allowed with one input file
	Quiet     bool      // no report, just validation
	Wrtr      io.Writer // reports and complaints go here
}

// Main checks every file. It returns the number of files that failed
// validation. err is only set if something stopped us, like a missing file.
func Main(args *Args) (nbad int, err error) {
	if args.PlotFname != "" && len(args.Fnames) != 1 {
		return 0, fmt.Errorf("plot needs exactly one input file, got %d", len(args.Fnames))
	}
	for _, fname := range args.Fnames {
		st, err := Stat(fname)
		if err != nil {
			return nbad, err
		}
		if !args.Quiet {
			if err := st.Write(args.Wrtr); err != nil {
				return nbad, err
			}
		}
		if verr := st.Validate(); verr != nil {
			nbad++
			if _, err := fmt.Fprintln(args.Wrtr, verr); err != nil {
				return nbad, err
			}
		}
		if args.PlotFname != "" {
			if err := Plot(st, args.PlotFname); err != nil {
				return nbad, err
			}
		}
	}
	return nbad, nil
}
