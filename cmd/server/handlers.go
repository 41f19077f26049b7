package main

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const generatedDir = "db/generated/"

func handleGetSchedules(ctx *gin.Context) {
	files, err := os.ReadDir(generatedDir)
	if err != nil {
		ctx.Status(http.StatusInternalServerError)
		return
	}

	var allIDs []string = []string{}
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		id, ok := strings.CutSuffix(file.Name(), "-solution.csv")
		if ok {
			allIDs = append(allIDs, id)
		}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"scheduleIds": allIDs,
	})
}

func handleGetScheduleWithId(ctx *gin.Context) {
	id := ctx.Param("id")
	content, err := os.ReadFile(generatedDir + id + "-solution.csv")
	if err != nil {
		ctx.Status(http.StatusNotFound)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"data": string(content),
	})
}

func handleGetScheduleFailures(ctx *gin.Context) {
	id := ctx.Param("id")
	content, err := os.ReadFile(generatedDir + id + "-failures.csv")
	if err != nil {
		ctx.Status(http.StatusNotFound)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"data": string(content),
	})
}

func handlePostSchedule(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}

	required := []string{"courses", "instructors", "rooms", "timeslots", "sections"}
	paths := make(map[string]string, len(required))
	id := uuid.NewString()
	for _, name := range required {
		files := form.File[name]
		if len(files) == 0 {
			ctx.String(http.StatusBadRequest, "missing file: "+name)
			return
		}
		path := "db/" + id + "-" + files[0].Filename
		if err := ctx.SaveUploadedFile(files[0], path); err != nil {
			ctx.Status(http.StatusInternalServerError)
			return
		}
		paths[name] = path
	}

	solutionFile := generatedDir + id + "-solution.csv"
	failuresFile := generatedDir + id + "-failures.csv"
	go createAndExportTimetable(paths["courses"], paths["instructors"], paths["rooms"],
		paths["timeslots"], paths["sections"], solutionFile, failuresFile)

	ctx.JSON(http.StatusOK, gin.H{
		"id": id,
	})
}
