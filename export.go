package orbitviz

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

const dateFormatFilename = "2006-01-02-15.04.05"

// ExportConfig configures trajectory streaming. This is write-only telemetry
// for plotting tools, not simulation state persistence.
type ExportConfig struct {
	Filename  string
	AsCSV     bool
	AsNDJSON  bool
	Timestamp bool // append the current datetime to the filename
}

// IsUseless returns whether this configuration would output anything.
func (c ExportConfig) IsUseless() bool {
	return (!c.AsCSV && !c.AsNDJSON) || c.Filename == ""
}

// row is the NDJSON export record.
type row struct {
	JD       float64 `json:"jd"`
	Elapsed  float64 `json:"elapsed"`
	Name     string  `json:"name"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
	VX       float64 `json:"vx"`
	VY       float64 `json:"vy"`
	VZ       float64 `json:"vz"`
}

// StreamStates consumes snapshot batches from the engine's state hook until
// the channel closes, writing one record per body per step. The epoch anchors
// the julian date column: jd = epoch + elapsed simulation seconds.
func StreamStates(conf ExportConfig, epoch time.Time, stateChan <-chan []State) error {
	if conf.IsUseless() {
		return fmt.Errorf("export: nothing to output")
	}
	name := conf.Filename
	if conf.Timestamp {
		name += "-" + time.Now().Format(dateFormatFilename)
	}
	var csvW *csv.Writer
	var jsonEnc *json.Encoder
	if conf.AsCSV {
		f, err := os.Create(name + ".csv")
		if err != nil {
			return err
		}
		defer f.Close()
		csvW = csv.NewWriter(f)
		defer csvW.Flush()
		if err := csvW.Write([]string{"jd", "elapsed", "name", "x", "y", "z", "vx", "vy", "vz"}); err != nil {
			return err
		}
	}
	if conf.AsNDJSON {
		f, err := os.Create(name + ".ndjson")
		if err != nil {
			return err
		}
		defer f.Close()
		jsonEnc = json.NewEncoder(f)
	}
	epoch = epoch.UTC()
	for states := range stateChan {
		for _, s := range states {
			jd := julian.TimeToJD(epoch.Add(time.Duration(s.Elapsed * float64(time.Second))))
			if csvW != nil {
				rec := []string{
					fmtF(jd), fmtF(s.Elapsed), s.Name,
					fmtF(s.Position.X), fmtF(s.Position.Y), fmtF(s.Position.Z),
					fmtF(s.Velocity.X), fmtF(s.Velocity.Y), fmtF(s.Velocity.Z),
				}
				if err := csvW.Write(rec); err != nil {
					return err
				}
			}
			if jsonEnc != nil {
				r := row{jd, s.Elapsed, s.Name, s.Position.X, s.Position.Y, s.Position.Z, s.Velocity.X, s.Velocity.Y, s.Velocity.Z}
				if err := jsonEnc.Encode(r); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func fmtF(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
