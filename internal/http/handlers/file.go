package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	types "github.com/skillup-platform/skillup-backend/internal/domain"
	filesft "github.com/skillup-platform/skillup-backend/internal/features/files"
	"github.com/skillup-platform/skillup-backend/internal/http/response"
	"github.com/skillup-platform/skillup-backend/internal/mediator"
	"github.com/skillup-platform/skillup-backend/internal/platform/logger"
)

type FileHandler struct {
	log *logger.Logger
	m   *mediator.Mediator
}

func NewFileHandler(log *logger.Logger, m *mediator.Mediator) *FileHandler {
	return &FileHandler{log: log.With("handler", "FileHandler"), m: m}
}

// POST /api/files  (multipart: file, category, description, is_public)
func (h *FileHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "missing file part")
		return
	}
	src, err := fh.Open()
	if err != nil {
		response.BadRequest(c, "unreadable file part")
		return
	}
	defer src.Close()

	isPublic, _ := strconv.ParseBool(c.PostForm("is_public"))
	cmd := filesft.UploadFileCommand{
		OriginalFileName: fh.Filename,
		ContentType:      fh.Header.Get("Content-Type"),
		Size:             fh.Size,
		Category:         c.PostForm("category"),
		Description:      c.PostForm("description"),
		IsPublic:         isPublic,
		Body:             src,
	}
	res := mediator.Send[filesft.UploadFileCommand, *types.FileUpload](c.Request.Context(), h.m, cmd)
	response.Write(c, http.StatusCreated, res)
}

// GET /api/files/:id/download
func (h *FileHandler) Download(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res := mediator.Send[filesft.DownloadFileCommand, *filesft.FileStream](c.Request.Context(), h.m, filesft.DownloadFileCommand{FileID: id})
	if !res.Success {
		c.JSON(response.StatusFor(res.Error, res.ValidationErrors), res)
		return
	}
	stream := res.Data
	defer stream.Reader.Close()

	c.Header("Content-Disposition", `attachment; filename="`+stream.File.OriginalFileName+`"`)
	if stream.File.ContentType != "" {
		c.Header("Content-Type", stream.File.ContentType)
	}
	http.ServeContent(c.Writer, c.Request, stream.File.OriginalFileName, stream.File.UpdatedAt, stream.Reader)
}

// GET /api/files
func (h *FileHandler) ListMine(c *gin.Context) {
	q := filesft.ListMyFilesQuery{
		Category: c.Query("category"),
		Page:     queryInt(c, "page"),
		PageSize: queryInt(c, "page_size"),
	}
	res := mediator.Send[filesft.ListMyFilesQuery, filesft.FilePage](c.Request.Context(), h.m, q)
	response.Write(c, http.StatusOK, res)
}

// GET /api/files/shared
func (h *FileHandler) ListShared(c *gin.Context) {
	q := filesft.ListSharedFilesQuery{
		Page:     queryInt(c, "page"),
		PageSize: queryInt(c, "page_size"),
	}
	res := mediator.Send[filesft.ListSharedFilesQuery, filesft.FilePage](c.Request.Context(), h.m, q)
	response.Write(c, http.StatusOK, res)
}

// POST /api/files/:id/share
func (h *FileHandler) Share(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var cmd filesft.ShareFileCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cmd.FileID = id
	res := mediator.Send[filesft.ShareFileCommand, *types.FileShare](c.Request.Context(), h.m, cmd)
	response.Write(c, http.StatusOK, res)
}

// DELETE /api/files/:id/share/:userId
func (h *FileHandler) RevokeShare(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	cmd := filesft.RevokeShareCommand{FileID: id, UserID: userID}
	res := mediator.Send[filesft.RevokeShareCommand, bool](c.Request.Context(), h.m, cmd)
	response.Write(c, http.StatusOK, res)
}

// DELETE /api/files/:id
func (h *FileHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res := mediator.Send[filesft.DeleteFileCommand, bool](c.Request.Context(), h.m, filesft.DeleteFileCommand{FileID: id})
	response.Write(c, http.StatusOK, res)
}
