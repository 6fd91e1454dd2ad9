package classfiles

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/OzanKutlar/Ders-Control/internal/app/contracts"
	"github.com/OzanKutlar/Ders-Control/internal/app/models"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/constvars"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/dto/responses"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type classFileUsecase struct {
	DownloadsDir string
	Log          *zap.Logger
}

// NewClassFileUsecase serves the class exports found in downloadsDir.
func NewClassFileUsecase(downloadsDir string, logger *zap.Logger) contracts.ClassFileUsecase {
	return &classFileUsecase{
		DownloadsDir: downloadsDir,
		Log:          logger,
	}
}

func (uc *classFileUsecase) ListJSONFiles(ctx context.Context) ([]string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	dirEntries, err := os.ReadDir(uc.DownloadsDir)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, exceptions.ErrCannotReadDir(err, uc.DownloadsDir)
	}

	files := []string{}
	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	uc.Log.Info("classFileUsecase.ListJSONFiles succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(files)),
	)
	return files, nil
}

func (uc *classFileUsecase) LoadClassFile(ctx context.Context, name string) ([]responses.ProcessedClass, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if name == "" || name == "." || name == ".." || filepath.Base(name) != name || strings.ContainsAny(name, `/\`) {
		return nil, exceptions.ErrInvalidFilename(nil, name)
	}

	path := filepath.Join(uc.DownloadsDir, name)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, exceptions.ErrFileNotFound(err, name)
	}
	if err != nil {
		return nil, exceptions.ErrCannotReadFile(err, name)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	processed := make([]responses.ProcessedClass, 0, len(raw))
	for i, item := range raw {
		var class models.ExportedClass
		if err := json.Unmarshal(item, &class); err != nil {
			uc.Log.Warn("classFileUsecase.LoadClassFile skipped malformed class",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingFileKey, name),
				zap.Int("index", i),
				zap.Error(err),
			)
			continue
		}
		if result, ok := ProcessClass(class); ok {
			processed = append(processed, result)
		}
	}

	uc.Log.Info("classFileUsecase.LoadClassFile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFileKey, name),
		zap.Int(constvars.LoggingCountKey, len(processed)),
	)
	return processed, nil
}

// ProcessClass snaps every slot to the half-hour grid of the planner page
// and drops the class when no slot survives.
func ProcessClass(class models.ExportedClass) (responses.ProcessedClass, bool) {
	slots := make([]string, 0, len(class.TimeSlots))
	for _, raw := range class.TimeSlots {
		if slot, ok := ProcessTimeSlot(raw); ok {
			slots = append(slots, slot)
		}
	}
	if len(slots) == 0 {
		return responses.ProcessedClass{}, false
	}
	return responses.ProcessedClass{
		Code:      class.Code,
		Name:      class.Name,
		Teacher:   class.Teacher,
		TimeSlots: slots,
		Classroom: class.Classroom,
		Capacity:  class.Capacity,
	}, true
}
