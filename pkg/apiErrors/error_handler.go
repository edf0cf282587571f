package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidFilters      = "VAL_004" // Filtros de analytics inválidos

	// Erros de recurso (3000-3999)
	ErrNotFound = "RES_001" // Recurso não encontrado

	// Erros de exportação (4000-4499)
	ErrUnsupportedExportFormat = "EXP_001" // Formato de exportação não suportado
	ErrExportData              = "EXP_002" // Dados inválidos para exportação
	ErrExportSerialization     = "EXP_003" // Falha ao serializar o arquivo

	// Erros de pagamento (4500-4999)
	ErrInvalidPayment      = "PAY_001" // Pagamento inválido
	ErrPaymentNotFound     = "PAY_002" // Pagamento não encontrado
	ErrPaymentNotRetryable = "PAY_003" // Pagamento não pode ser reprocessado
	ErrPaymentMaxAttempts  = "PAY_004" // Limite de tentativas atingido

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
	ErrServiceDisabled   = "SRV_005" // Serviço não habilitado
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:          http.StatusBadRequest,
	ErrMissingRequiredData:     http.StatusBadRequest,
	ErrInvalidFormat:           http.StatusBadRequest,
	ErrInvalidFilters:          http.StatusBadRequest,
	ErrNotFound:                http.StatusNotFound,
	ErrUnsupportedExportFormat: http.StatusBadRequest,
	ErrExportData:              http.StatusUnprocessableEntity,
	ErrExportSerialization:     http.StatusInternalServerError,
	ErrInvalidPayment:          http.StatusBadRequest,
	ErrPaymentNotFound:         http.StatusNotFound,
	ErrPaymentNotRetryable:     http.StatusConflict,
	ErrPaymentMaxAttempts:      http.StatusConflict,
	ErrInternalServer:          http.StatusInternalServerError,
	ErrDatabaseOperation:       http.StatusInternalServerError,
	ErrExternalService:         http.StatusBadGateway,
	ErrCommunication:           http.StatusServiceUnavailable,
	ErrServiceDisabled:         http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP do código, ou 500 quando desconhecido
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
// Útil para quando você quer envolver um erro existente em um erro de API
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
