package middleware

import (
	"context"
	"fmt"
	"runtime"

	"github.com/vfg2006/meta-ads-cli/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-cli/pkg/log"
)

// RecoverPanic deve ser chamado com defer: converte um panic em erro UNKNOWN_ERROR e o entrega a onPanic
func RecoverPanic(ctx context.Context, onPanic func(err error)) {
	recovered := recover()
	if recovered == nil {
		return
	}

	// Captura a pilha de chamadas
	stack := make([]byte, 4096)
	stackSize := runtime.Stack(stack, false)

	log.ForContext(ctx).WithFields(log.Fields{
		"panic_error": recovered,
		"stack_trace": string(stack[:stackSize]),
	}).Error("Erro não tratado na execução")

	onPanic(apiErrors.New(apiErrors.ErrUnknown, fmt.Sprintf("Unexpected error: %v", recovered)))
}
