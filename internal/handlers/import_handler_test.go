package handlers

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventhub/internal/dto"
	"eventhub/internal/models"
	"eventhub/internal/services"
	"eventhub/internal/services/service_mocks"
	"eventhub/internal/sheets"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
)

type ImportHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	importService *service_mocks.MockImportServiceInterface
	handler       *ImportHandler
	e             *echo.Echo
}

func TestImportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ImportHandlerTestSuite))
}

func (s *ImportHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.importService = service_mocks.NewMockImportServiceInterface(s.ctrl)
	s.handler = NewImportHandler(s.importService, 1<<20, 100)
	s.e = newTestEcho()
}

func (s *ImportHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ImportHandlerTestSuite) workbook() []byte {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	s.Require().NoError(f.SetSheetName("Sheet1", "Staff_Profiles"))
	s.Require().NoError(f.SetSheetRow("Staff_Profiles", "A1", &[]interface{}{"Staff Name", "Phone", "Stars"}))
	s.Require().NoError(f.SetSheetRow("Staff_Profiles", "A2", &[]interface{}{"Sam Casual", "0412345678", 4}))

	buf, err := f.WriteToBuffer()
	s.Require().NoError(err)
	return buf.Bytes()
}

func (s *ImportHandlerTestSuite) upload(filename string, content []byte) (echo.Context, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		s.Require().NoError(err)
		_, err = part.Write(content)
		s.Require().NoError(err)
	}
	s.Require().NoError(writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/import", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	withSession(c, "admin@example.com", models.RoleAdmin)
	return c, rec
}

func (s *ImportHandlerTestSuite) TestImportWorkbook_Success() {
	s.importService.EXPECT().
		Import(gomock.Any(), gomock.Any(), "admin@example.com").
		DoAndReturn(func(_ context.Context, book *sheets.Workbook, _ string) (*dto.ImportSummary, error) {
			sheet, ok := book.Sheet("staff_profiles")
			s.Require().True(ok)
			s.Len(sheet.Rows, 1)
			return &dto.ImportSummary{
				Source: "hub.xlsx",
				Sheets: []dto.SheetResult{{Sheet: "Staff_Profiles", Imported: 1}},
			}, nil
		}).
		Times(1)

	c, rec := s.upload("hub.xlsx", s.workbook())

	s.NoError(s.handler.ImportWorkbook(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"imported":1`)
	s.Contains(rec.Body.String(), `"skipped":0`)
}

func (s *ImportHandlerTestSuite) TestImportWorkbook_MissingFile() {
	c, rec := s.upload("", nil)

	s.NoError(s.handler.ImportWorkbook(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_002", decodeError(rec).Error.Code)
}

func (s *ImportHandlerTestSuite) TestImportWorkbook_UnsupportedFormat() {
	c, rec := s.upload("hub.csv", []byte("Event ID,Date\n"))

	s.NoError(s.handler.ImportWorkbook(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("IMPORT_001", decodeError(rec).Error.Code)
}

func (s *ImportHandlerTestSuite) TestImportWorkbook_Unreadable() {
	c, rec := s.upload("hub.xlsx", []byte("not a zip archive"))

	s.NoError(s.handler.ImportWorkbook(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal("IMPORT_002", decodeError(rec).Error.Code)
}

func (s *ImportHandlerTestSuite) TestImportWorkbook_TooLarge() {
	s.handler = NewImportHandler(s.importService, 16, 100)

	c, rec := s.upload("hub.xlsx", s.workbook())

	s.NoError(s.handler.ImportWorkbook(c))
	s.Equal(http.StatusRequestEntityTooLarge, rec.Code)
	s.Equal("IMPORT_003", decodeError(rec).Error.Code)
}

func (s *ImportHandlerTestSuite) TestImportWorkbook_StoreKeptFailing() {
	partial := &dto.ImportSummary{Sheets: []dto.SheetResult{{Sheet: "Staff_Profiles", Imported: 3, Skipped: 1}}}
	s.importService.EXPECT().
		Import(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(partial, fmt.Errorf("Event_Sales: %w", services.ErrCircuitBreakerOpen)).
		Times(1)

	c, rec := s.upload("hub.xlsx", s.workbook())

	s.NoError(s.handler.ImportWorkbook(c))
	s.Equal(http.StatusServiceUnavailable, rec.Code)

	resp := decodeError(rec)
	s.Equal("SYSTEM_003", resp.Error.Code)
	s.Contains(resp.Error.Details, "3 rows were imported before stopping")
}

func (s *ImportHandlerTestSuite) TestImportWorkbook_NoSession() {
	c, rec := s.upload("hub.xlsx", s.workbook())
	c.Set("user_email", nil)

	s.NoError(s.handler.ImportWorkbook(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}
