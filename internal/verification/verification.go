// Package verification verifies that a list of found code regions is
// consistent with the ROM image it was produced from.
package verification

import (
	"fmt"

	"github.com/retroenv/n64analyser/internal/program"
	"github.com/retroenv/n64analyser/internal/rom"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// maxLoggedIssues limits the number of logged issues per verification.
const maxLoggedIssues = 10

type verifier struct {
	logger *log.Logger
	issues int
}

// VerifyRegions checks that all regions are non empty, instruction aligned,
// located after the boot code and inside of the image, sorted by start
// offset and free of overlaps.
func VerifyRegions(logger *log.Logger, data []byte, regions []program.Region) error {
	v := &verifier{logger: logger}
	starts := set.New[int]()

	for i, region := range regions {
		v.checkRegion(i, region, len(data))

		if starts.Contains(region.RomStart) {
			v.report(i, region, "duplicate region start")
		}
		starts.Add(region.RomStart)

		if i > 0 && region.RomStart < regions[i-1].RomEnd {
			v.report(i, region, "region overlaps or precedes previous region")
		}
	}

	if v.issues == 0 {
		return nil
	}
	return fmt.Errorf("%d region issues", v.issues)
}

func (v *verifier) checkRegion(index int, region program.Region, size int) {
	if region.Empty() {
		v.report(index, region, "empty region")
	}
	if region.RomStart%rom.InstructionSize != 0 || region.RomEnd%rom.InstructionSize != 0 {
		v.report(index, region, "region not instruction aligned")
	}
	if region.RomStart < rom.IPL3End {
		v.report(index, region, "region starts inside of the boot code")
	}
	if region.RomEnd > size {
		v.report(index, region, "region ends outside of the rom")
	}
}

func (v *verifier) report(index int, region program.Region, issue string) {
	v.issues++
	if v.issues > maxLoggedIssues {
		return
	}
	v.logger.Error("Region verification failed",
		log.String("issue", issue),
		log.Int("index", index),
		log.Hex("start", region.RomStart),
		log.Hex("end", region.RomEnd))
}
