package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/revenue-planning-api/internal/domain"
	"github.com/vfg2006/revenue-planning-api/internal/usecases/insighting"
	"github.com/vfg2006/revenue-planning-api/internal/usecases/records"
)

func ListTeam(service records.RecordService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.ListTeam())
	})
}

func AddTeamMember(service records.RecordService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var person domain.Person
		if !decodeBody(w, r, &person) {
			return
		}

		stored, err := service.AddPerson(person)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, stored)
	})
}

func UpdateTeamMember(service records.RecordService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var person domain.Person
		if !decodeBody(w, r, &person) {
			return
		}

		updated, err := service.UpdatePerson(id, person)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	})
}

func ListStaffingNeeds(service records.RecordService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.ListStaffingNeeds())
	})
}

func AddStaffingNeed(service records.RecordService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var need domain.StaffingNeed
		if !decodeBody(w, r, &need) {
			return
		}

		stored, err := service.AddStaffingNeed(need)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, stored)
	})
}

func DeleteStaffingNeed(service records.RecordService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteStaffingNeed(id); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func GetTeamOverview(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.GetTeamOverview())
	})
}
