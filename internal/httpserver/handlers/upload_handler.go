package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"tunedesk/internal/storage"
)

// UploadFile stores a multipart "file" part and returns the generated
// name, served path, original name and size. Recording a Binary for it
// is a separate call, so no Binary row ever points at a failed write.
func UploadFile(st *storage.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "file is required", http.StatusBadRequest)
			return
		}
		defer file.Close()
		stored, err := st.Save(file, header.Filename)
		if err != nil {
			respondError(w, lg, err)
			return
		}
		lg.Infow("file stored", "name", stored.FileName, "size", stored.FileSize)
		respondJSON(w, stored)
	}
}
