package acron

import (
	"github.com/jpfluger/schedprim/areflect"
	"reflect"
)

const TYPEMANAGER_MAINTENANCETASK = "maintenancetask"

func init() {
	_ = areflect.TypeManager().Register(TYPEMANAGER_MAINTENANCETASK, "acron", returnTypeManagerMaintenanceTask)
}

func returnTypeManagerMaintenanceTask(typeName string) (reflect.Type, error) {
	var rtype reflect.Type // nil is the zero value for pointers, maps, slices, channels, and function types, interfaces, and other compound types.
	switch TaskType(typeName) {
	case TASKTYPE_EXTENDHORIZON:
		rtype = reflect.TypeOf(TaskExtendHorizon{})
	case TASKTYPE_REVALIDATEFIXTURES:
		rtype = reflect.TypeOf(TaskRevalidateFixtures{})
	}
	// Return the determined reflect.Type and no error.
	return rtype, nil
}
